// cmd/profseq/main.go
package main

import (
	"profseq/internal/app"
	"profseq/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
