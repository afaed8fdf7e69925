package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"knightchase/internal/chase"
)

func main() {
	boardPath := flag.String("board", "", "board text file")
	depth := flag.Int("depth", 3, "print frontiers for depth 0..N")
	flag.Parse()

	text, err := os.ReadFile(*boardPath)
	if err != nil {
		log.Fatalf("read board: %v", err)
	}
	b, err := chase.ParseBoard(string(text))
	if err != nil {
		log.Fatalf("parse board: %v", err)
	}
	origin, err := chase.PursuerOrigin(b)
	if err != nil {
		log.Fatalf("pursuer: %v", err)
	}

	fmt.Println(b.String())
	for k := 0; k <= *depth; k++ {
		f := chase.Frontier(b, origin, k)
		fmt.Printf("\ndepth %d: %d cells\n", k, f.Len())
		fmt.Println(b.Render(f, 'x'))
	}
}
