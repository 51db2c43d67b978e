package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang/glog"
	"github.com/mattn/go-isatty"
	"github.com/timpalpant/go-yatsy"
)

type Params struct {
	Seed int64
}

func main() {
	var params Params
	flag.Int64Var(&params.Seed, "seed", 0, "Dice seed (0 = random)")
	flag.Parse()

	seed := params.Seed
	if seed == 0 {
		var err error
		seed, err = newSeed()
		if err != nil {
			glog.Warningf("Falling back to clock seed: %v", err)
			seed = time.Now().UnixNano()
		}
	}
	glog.V(1).Infof("Seeding dice with %d", seed)

	game := yatsy.NewGame(rand.New(rand.NewSource(seed)))
	fd := os.Stdout.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	newShell(game, os.Stdin, os.Stdout, tty).run()

	glog.Flush()
	os.Exit(0)
}

func newSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, errors.Wrap(err, "read random seed")
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
