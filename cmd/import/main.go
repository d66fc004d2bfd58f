// Command import registers telegram user ids from a text file, one id per
// line, into the configured user store. Blank lines and lines starting with
// '#' are skipped.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	environment "azadinet-bot/internal/env"

	"github.com/samber/lo"
)

// batchSize bounds one store write; each batch costs a single read and write.
const batchSize = 10000

type registrar interface {
	RegisterMany(ctx context.Context, telegramIDs []int64) (int, error)
}

func main() {
	usersPath := flag.String("users", "", "path to a file with one telegram id per line")
	dryRun := flag.Bool("dry-run", false, "parse the file without writing to the store")
	flag.Parse()

	if *usersPath == "" {
		log.Fatal("users file is required: -users <path>")
	}

	f, err := os.Open(*usersPath)
	if err != nil {
		log.Fatalf("failed to open users file: %v", err)
	}
	defer f.Close()

	ids, skipped, err := parseIDs(f)
	if err != nil {
		log.Fatalf("failed to read users file: %v", err)
	}
	fmt.Printf("Parsed %d ids, skipped %d malformed lines\n", len(ids), skipped)

	if *dryRun {
		return
	}

	ctx := context.Background()
	userService, closeStore, err := environment.SetupUsers(ctx)
	if err != nil {
		log.Fatalf("Failed to open user store: %v", err)
	}
	defer closeStore()

	added, err := importIDs(ctx, userService, ids)
	if err != nil {
		log.Fatalf("import stopped after %d new users: %v", added, err)
	}
	fmt.Printf("Imported %d new users, %d already known\n", added, len(ids)-added)
}

func parseIDs(r io.Reader) (ids []int64, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		id, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			fmt.Printf("WARN: skipping %q: %v\n", line, err)
			skipped++
			continue
		}
		ids = append(ids, id)
	}
	return ids, skipped, scanner.Err()
}

func importIDs(ctx context.Context, users registrar, ids []int64) (int, error) {
	var added int
	for _, batch := range lo.Chunk(ids, batchSize) {
		n, err := users.RegisterMany(ctx, batch)
		if err != nil {
			return added, fmt.Errorf("register batch of %d: %w", len(batch), err)
		}
		added += n
	}
	return added, nil
}
