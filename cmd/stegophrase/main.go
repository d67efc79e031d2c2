package main

import "github.com/cleitonmarx/stegophrase/internal/app"

func main() {
	err := app.NewStegoApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
