// Command typespace-dump builds a sample module's Type Registry and
// writes its typespace wire format (spec §6.1) to stdout or a file —
// the Go analogue of the module-description step a host performs once
// at module load, in the shape of the teacher's cmd/spacetimedb.
package main

import (
	"flag"
	"fmt"
	"os"
	"reflect"

	"github.com/clockworklabs/spacetimedb-bsatn-go/internal/bsatn"
	"github.com/clockworklabs/spacetimedb-bsatn-go/pkg/sats"
	"github.com/clockworklabs/spacetimedb-bsatn-go/pkg/satn"
)

// Player and Match are sample generated-binding shapes, registered
// below purely to give the dump something non-trivial to emit.
type Player struct {
	Identity satn.Identity
	Name     string
	Online   bool
}

type Match struct {
	Players   []Player
	StartedAt satn.Timestamp
	Schedule  satn.ScheduleAt
}

func buildRegistry() *sats.Registry {
	reg := sats.NewRegistry(4)

	playerType := sats.Product(
		sats.NamedElement("identity", satn.IdentityCodec.AlgebraicType()),
		sats.NamedElement("name", sats.StringType()),
		sats.NamedElement("online", sats.BoolType()),
	)
	playerIdx, inline := reg.Register(playerType, reflect.TypeOf(Player{}), "Player")
	if inline {
		panic("typespace-dump: Player unexpectedly classified inline-only")
	}

	matchType := sats.Product(
		sats.NamedElement("players", sats.Array(sats.Ref(playerIdx))),
		sats.NamedElement("started_at", satn.TimestampCodec.AlgebraicType()),
		sats.NamedElement("schedule", satn.ScheduleAtCodec.AlgebraicType()),
	)
	reg.Register(matchType, reflect.TypeOf(Match{}), "Match")

	return reg
}

func main() {
	out := flag.String("o", "", "output file (default stdout)")
	compress := flag.Bool("z", false, "zstd-compress the dump before writing")
	flag.Parse()

	reg := buildRegistry()
	ts := reg.Freeze()

	w := bsatn.NewWriter()
	ts.Serialize(w)
	if err := w.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "typespace-dump: %v\n", err)
		os.Exit(1)
	}

	payload := w.Bytes()
	if *compress {
		payload = bsatn.CompressBlob(payload)
	}

	dest := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "typespace-dump: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		dest = f
	}

	if _, err := dest.Write(payload); err != nil {
		fmt.Fprintf(os.Stderr, "typespace-dump: %v\n", err)
		os.Exit(1)
	}
}
