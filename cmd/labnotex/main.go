// cmd/labnotex/main.go
package main

import (
	"labnotex/internal/app"
	"labnotex/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
