package main

import (
	"bptree/bptree"
	"bptree/cli"
	"bufio"
	"flag"
	"log"
	"os"
)

var order = flag.Int("order", 32, "Maximum number of entries per tree node.")

func main() {
	flag.Parse()

	tree, err := bptree.New(*order)
	if err != nil {
		log.Fatal(err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	demo := cli.NewCli(scanner, tree)
	demo.Start()
}
