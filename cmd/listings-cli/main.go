package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Abhishek10293/PropertyManagement/internal/client/cli"
)

func main() {
	if err := cli.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
