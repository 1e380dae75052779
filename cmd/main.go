/*
 *  main.go
 *  cmd
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package main

import (
	"os"

	"github.com/op/go-logging"
	"github.com/tanghaibao/smfclust"
)

// main is the entrypoint for the entire program, routes to commands
func main() {
	logging.SetBackend(smfclust.BackendFormatter)
	os.Exit(smfclust.Main(os.Args[1:]))
}
