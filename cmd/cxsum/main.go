package main

import "github.com/cxkit/crypto/cmd/cxsum/cmd"

func main() {
	cmd.Execute()
}
