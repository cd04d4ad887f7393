// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand_test

import (
	"fmt"
	"log"

	"golang.org/x/exp/procgen/rand"
)

func Example() {
	r, err := rand.New(12345, rand.WithAlgorithm(rand.MersenneTwister))
	if err != nil {
		log.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		v, err := r.IntRange(1, 6)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: 6 6 2 1 2 1 2 5 4 4
}

func ExampleShuffleSlice() {
	r, err := rand.New(7, rand.WithAlgorithm(rand.MersenneTwister))
	if err != nil {
		log.Fatal(err)
	}
	exits := []string{"north", "east", "south", "west"}
	rand.ShuffleSlice(r, exits)
	fmt.Println(exits)
	// Output: [south east west north]
}

func ExampleRollDice() {
	r, err := rand.New(12345, rand.WithAlgorithm(rand.MersenneTwister))
	if err != nil {
		log.Fatal(err)
	}
	v, err := rand.RollDice(r, "2*3d6+1")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(v)
	// Output: 30
}

func ExampleRandom_State() {
	r, err := rand.New(1)
	if err != nil {
		log.Fatal(err)
	}
	saved := r.State()
	a := r.Uint32()

	restored, err := rand.Restore(saved)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(a == restored.Uint32())
	// Output: true
}
