// Command zsetcli is a small interactive driver for the sortedset
// container: it loads one in-process *zset.ZSet[string], accepts
// line-oriented subcommands (ADD, REM, SCORE, RANK, RANGE, CARD, ...),
// and can also run a Lua snippet against the same container through
// internal/script.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"sortedset/internal/script"
	"sortedset/internal/zset"
)

func main() {
	order := flag.String("order", "asc", "score order: asc or desc")
	scriptFlag := flag.String("script", "", "run this Lua snippet against an empty set and exit")
	flag.Parse()

	var z *zset.ZSet[string]
	switch *order {
	case "asc":
		z = zset.NewStringZSet()
	case "desc":
		z = zset.New[string](zset.StringComparator(), zset.DescendingScoreHandler())
	default:
		log.Fatalf("unknown -order %q: want asc or desc", *order)
	}

	if *scriptFlag != "" {
		result, err := script.NewEngine(z).Eval(*scriptFlag)
		if err != nil {
			log.Fatalf("script failed: %v", err)
		}
		fmt.Printf("%v\n", result)
		return
	}

	log.Printf("zsetcli ready (order=%s); type HELP for commands", *order)
	repl(z)
}

func repl(z *zset.ZSet[string]) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd := strings.ToUpper(fields[0])
		args := fields[1:]

		switch cmd {
		case "HELP":
			fmt.Println("ADD score member | REM member | SCORE member | RANK member |",
				"RANGE start stop | CARD | QUIT")
		case "ADD":
			if len(args) != 2 {
				fmt.Println("usage: ADD score member")
				continue
			}
			score, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				fmt.Println("bad score:", err)
				continue
			}
			z.Add(score, args[1])
		case "REM":
			if len(args) != 1 {
				fmt.Println("usage: REM member")
				continue
			}
			_, ok := z.Remove(args[0])
			fmt.Println(ok)
		case "SCORE":
			if len(args) != 1 {
				fmt.Println("usage: SCORE member")
				continue
			}
			score, ok := z.Score(args[0])
			if !ok {
				fmt.Println("(nil)")
				continue
			}
			fmt.Println(score)
		case "RANK":
			if len(args) != 1 {
				fmt.Println("usage: RANK member")
				continue
			}
			fmt.Println(z.Rank(args[0]))
		case "RANGE":
			if len(args) != 2 {
				fmt.Println("usage: RANGE start stop")
				continue
			}
			start, err1 := strconv.Atoi(args[0])
			stop, err2 := strconv.Atoi(args[1])
			if err1 != nil || err2 != nil {
				fmt.Println("bad rank")
				continue
			}
			for _, e := range z.RangeByRank(start, stop) {
				fmt.Printf("%d) %s %d\n", z.Rank(e.Member), e.Member, e.Score)
			}
		case "CARD":
			fmt.Println(z.Cardinality())
		case "QUIT", "EXIT":
			return
		default:
			fmt.Println("unknown command, try HELP")
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("reading stdin: %v", err)
	}
}
