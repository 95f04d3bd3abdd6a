package cli

import (
	"bptree/bptree"
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

type Cli struct {
	scanner    *bufio.Scanner
	tree       *bptree.Tree
	visualizer *bptree.Visualizer
}

func NewCli(s *bufio.Scanner, t *bptree.Tree) *Cli {
	v := &bptree.Visualizer{
		Tree: t,
	}
	return &Cli{scanner: s, tree: t, visualizer: v}
}

func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		c.processInput(c.scanner.Text())
		c.printPrompt()
	}
}

func (c *Cli) printHelp() {
	fmt.Println(`
B+ Tree CLI

Available Commands:
  SET <key> <val>   Insert or update a key-value pair
  ADD <key> <val>   Insert a key-value pair, fails if the key exists
  GET <key>         Retrieve the value for key
  HAS <key>         Check whether key is present
  DEL <key>         Remove a key-value pair
  RANGE <lo> <hi>   List pairs with lo <= key < hi
  SCAN              List all pairs in ascending key order
  LEN               Print the number of pairs
  TREE              Visualize the tree structure
  CLEAR             Remove all pairs
  EXIT              Terminate this session
`)
}

func (c *Cli) printPrompt() {
	fmt.Print("> ")
}

func (c *Cli) processInput(line string) {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		fmt.Printf("Unknown command %q\n", command)
	case "set":
		c.processSetCommand(fields[1:])
	case "add":
		c.processAddCommand(fields[1:])
	case "get":
		c.processGetCommand(fields[1:])
	case "has":
		c.processHasCommand(fields[1:])
	case "del":
		c.processDeleteCommand(fields[1:])
	case "range":
		c.processRangeCommand(fields[1:])
	case "scan":
		c.printPairs(c.tree.Iter())
	case "len":
		fmt.Println(c.tree.Len())
	case "tree":
		fmt.Println(c.tree)
		fmt.Println(c.visualizer.Visualize())
	case "clear":
		c.tree.Clear()
		fmt.Println("OK")
	case "exit":
		os.Exit(0)
	}
}

func (c *Cli) processSetCommand(args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: SET <key> <value>")
		return
	}
	c.tree.Upsert([]byte(args[0]), []byte(args[1]))
	fmt.Println(c.tree)
}

func (c *Cli) processAddCommand(args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: ADD <key> <value>")
		return
	}
	if err := c.tree.Insert([]byte(args[0]), []byte(args[1])); err != nil {
		if errors.Is(err, bptree.ErrKeyExists) {
			fmt.Println("Key already exists.")
			return
		}
		fmt.Println(err)
		return
	}
	fmt.Println(c.tree)
}

func (c *Cli) processGetCommand(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: GET <key>")
		return
	}
	val, err := c.tree.Search([]byte(args[0]))
	if err != nil {
		fmt.Println("Key not found.")
		return
	}
	fmt.Println(string(val))
}

func (c *Cli) processHasCommand(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: HAS <key>")
		return
	}
	fmt.Println(c.tree.Contains([]byte(args[0])))
}

func (c *Cli) processDeleteCommand(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: DEL <key>")
		return
	}
	if err := c.tree.Delete([]byte(args[0])); err != nil {
		fmt.Println("Key not found.")
		return
	}
	fmt.Println(c.tree)
}

func (c *Cli) processRangeCommand(args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: RANGE <lo> <hi>")
		return
	}
	c.printPairs(c.tree.Range([]byte(args[0]), []byte(args[1])))
}

func (c *Cli) printPairs(it *bptree.Iterator) {
	keyColor := color.New(color.FgCyan)
	count := 0
	for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
		fmt.Printf("%s = %s\n", keyColor.Sprint(string(k)), string(v))
		count++
	}
	fmt.Printf("(%d pairs)\n", count)
}
