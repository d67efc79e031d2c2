//go:build integration

package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	vault "github.com/hashicorp/vault/api"
	"github.com/testcontainers/testcontainers-go/modules/compose"
	"github.com/testcontainers/testcontainers-go/wait"
)

// initEnvVars exports the given variables before the application initializers read them.
type initEnvVars struct {
	envVars map[string]string
}

func (i *initEnvVars) Initialize(ctx context.Context) (context.Context, error) {
	for k, v := range i.envVars {
		if err := os.Setenv(k, v); err != nil {
			return ctx, fmt.Errorf("failed to set %s: %w", k, err)
		}
	}
	return ctx, nil
}

func (i *initEnvVars) Close() {
	for k := range i.envVars {
		_ = os.Unsetenv(k)
	}
}

type InitDockerCompose struct {
	compose *compose.DockerCompose
}

func (i *InitDockerCompose) Initialize(ctx context.Context) (context.Context, error) {
	dc, err := compose.NewDockerCompose("../../docker-compose.deps.yml")
	if err != nil {
		return ctx, err
	}
	i.compose = dc

	err = i.compose.
		WaitForService("postgres", wait.NewLogStrategy(
			"database system is ready to accept connections",
		)).
		WaitForService("vault", wait.NewLogStrategy(
			"Vault server started!",
		)).
		WaitForService("pubsub", wait.NewLogStrategy(
			"Server started, listening on",
		)).
		Up(ctx, compose.Wait(true))
	if err != nil {
		return ctx, err
	}
	return ctx, nil
}

func (i InitDockerCompose) Close() {
	if i.compose != nil {
		cancelCtx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		err := i.compose.Down(
			cancelCtx,
			compose.RemoveOrphans(true),
			compose.RemoveVolumes(true),
			compose.RemoveImages(compose.RemoveImagesLocal),
		)
		if err != nil {
			log.Printf("failed to stop docker compose: %v", err)
		}
	}
}

// initPubSubTopology creates the artifact topic on the emulator and a subscription the
// tests read published events from.
type initPubSubTopology struct {
	projectID    string
	topicID      string
	subscription string
}

func (i initPubSubTopology) Initialize(ctx context.Context) (context.Context, error) {
	client, err := pubsubV2.NewClient(ctx, i.projectID)
	if err != nil {
		return ctx, fmt.Errorf("failed to create pubsub client: %w", err)
	}
	defer client.Close() //nolint:errcheck

	topic, err := client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{
		Name: "projects/" + i.projectID + "/topics/" + i.topicID,
	})
	if err != nil {
		return ctx, fmt.Errorf("failed to create topic: %w", err)
	}

	_, err = client.SubscriptionAdminClient.CreateSubscription(ctx, &pubsubpb.Subscription{
		Name:  "projects/" + i.projectID + "/subscriptions/" + i.subscription,
		Topic: topic.GetName(),
	})
	if err != nil {
		return ctx, fmt.Errorf("failed to create subscription: %w", err)
	}
	return ctx, nil
}

// initVaultSecrets writes the database credentials the application reads through the
// Vault config provider.
type initVaultSecrets struct {
	address    string
	token      string
	mountPath  string
	secretPath string
	secrets    map[string]any
}

func (i initVaultSecrets) Initialize(ctx context.Context) (context.Context, error) {
	cfg := vault.DefaultConfig()
	cfg.Address = i.address

	client, err := vault.NewClient(cfg)
	if err != nil {
		return ctx, fmt.Errorf("failed to create vault client: %w", err)
	}
	client.SetToken(i.token)

	if _, err := client.KVv2(i.mountPath).Put(ctx, i.secretPath, i.secrets); err != nil {
		return ctx, fmt.Errorf("failed to write vault secrets: %w", err)
	}
	return ctx, nil
}
