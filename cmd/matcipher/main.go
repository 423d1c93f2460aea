// Command matcipher encodes and decodes text with the matrix cipher.
package main

import "github.com/katalvlaran/matcipher/cmd/matcipher/cmd"

func main() {
	cmd.Execute()
}
