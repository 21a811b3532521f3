package main

import (
	"os"

	"github.com/nuetzliches/objname/internal/app"
)

func main() {
	os.Exit(app.Main(os.Args))
}
