// Command ringneck is a demonstration CLI host: it reads a Ringneck
// script and a JSON subject document, runs the script against the
// subject with the bundled example builtins registered, and prints
// the resulting subject plus the per-statement value list.
//
// Grounded on the teacher's cmd/funxy/main.go wiring style: plain
// flag parsing, os.ReadFile, stdlib log for ambient diagnostics.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ringneck-lang/ringneck"
	"github.com/ringneck-lang/ringneck/examplebuiltins"
)

func main() {
	subjectFlag := flag.String("subject", "{}", "JSON document to use as the subject")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		log.Fatal("usage: ringneck [-subject '{...}'] <script.rn>")
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatalf("reading script: %v", err)
	}

	var subject map[string]any
	if err := json.Unmarshal([]byte(*subjectFlag), &subject); err != nil {
		log.Fatalf("parsing -subject JSON: %v", err)
	}

	results, err := ringneck.Run(string(source), subject, examplebuiltins.All())
	if err != nil {
		log.Fatalf("run failed: %v", err)
	}

	for i, v := range results {
		fmt.Printf("[%d] %s\n", i, v.String())
	}

	out, err := json.MarshalIndent(subject, "", "  ")
	if err != nil {
		log.Fatalf("encoding subject: %v", err)
	}
	fmt.Println(string(out))
}
