// Команда contentctl выполняет тот же запрос к CMS, что и сервер, и печатает результат.
package main

import (
	"fmt"
	"os"
)

// Version проставляется при сборке через -ldflags.
var Version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
