package main

import (
	"bptree/bptree"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
)

var numRecords *int
var order *int
var useFaker *bool
var seed *int64

func setupFlags() {
	numRecords = flag.Int("records", 100000, "Amount of records to load into the tree.")
	order = flag.Int("order", 1000, "Maximum number of entries per tree node.")
	useFaker = flag.Bool("faker", false, "Generate keys with go-faker instead of dense integers.")
	seed = flag.Int64("seed", 1, "Seed for the record shuffle.")
	flag.Usage = func() {
		fmt.Println("\nB+ Tree benchmark\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}

func makeRecords(rng *rand.Rand) [][]byte {
	keys := make([][]byte, *numRecords)
	if *useFaker {
		for i := range keys {
			keys[i] = []byte(fmt.Sprintf("%s%s%08d", faker.Word(), faker.Word(), i))
		}
	} else {
		for i := range keys {
			keys[i] = []byte(fmt.Sprintf("%012d", i))
		}
	}
	rng.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	return keys
}

func report(phase string, n int, elapsed time.Duration) {
	log.Printf("%-12s %8d ops in %10v (%8.0f ops/s)", phase, n, elapsed, float64(n)/elapsed.Seconds())
}

func main() {
	setupFlags()

	tree, err := bptree.New(*order)
	if err != nil {
		log.Fatal(err)
	}

	rng := rand.New(rand.NewSource(*seed))
	keys := makeRecords(rng)

	start := time.Now()
	for _, k := range keys {
		if err := tree.Insert(k, k); err != nil {
			log.Fatal(err)
		}
	}
	report("insert", len(keys), time.Since(start))

	start = time.Now()
	for _, k := range keys {
		if _, err := tree.Search(k); err != nil {
			log.Fatal(err)
		}
	}
	report("search", len(keys), time.Since(start))

	start = time.Now()
	scanned := tree.Iter().Count()
	report("scan", scanned, time.Since(start))
	if scanned != tree.Len() {
		log.Fatalf("scan visited %d of %d entries", scanned, tree.Len())
	}

	half := keys[:len(keys)/2]
	start = time.Now()
	for _, k := range half {
		if err := tree.Delete(k); err != nil {
			log.Fatal(err)
		}
	}
	report("delete", len(half), time.Since(start))

	log.Printf("done: %v", tree)
}
