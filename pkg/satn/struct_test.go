package satn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clockworklabs/spacetimedb-bsatn-go/internal/bsatn"
	"github.com/clockworklabs/spacetimedb-bsatn-go/pkg/sats"
)

type inventoryItem struct {
	Name  string
	Count uint32
}

type reflectedPlayer struct {
	ID       uint64
	Nickname string
	Online   bool
	Scores   []int32
	Tag      string `bsatn:"-"`
	Items    []inventoryItem
}

func TestReflectProductRoundTrip(t *testing.T) {
	codec := ReflectProduct[reflectedPlayer]()

	p := reflectedPlayer{
		ID:       7,
		Nickname: "nova",
		Online:   true,
		Scores:   []int32{-1, 2, 3},
		Tag:      "unnamed-but-present",
		Items: []inventoryItem{
			{Name: "sword", Count: 1},
			{Name: "shield", Count: 2},
		},
	}

	buf, err := ToBytes(codec, p)
	require.NoError(t, err)

	got, err := FromBytesStrict(codec, buf)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestReflectProductFieldOrderIsDeclaredOrder(t *testing.T) {
	at := ReflectProduct[reflectedPlayer]().AlgebraicType()
	require.Equal(t, sats.KindProduct, at.Kind)
	names := make([]string, 0, len(at.Product.Elements))
	for _, e := range at.Product.Elements {
		if e.Name == nil {
			names = append(names, "")
			continue
		}
		names = append(names, *e.Name)
	}
	assert.Equal(t, []string{"ID", "Nickname", "Online", "Scores", "", "Items"}, names)
}

func TestReflectProductSkipsUnexportedFields(t *testing.T) {
	type withUnexported struct {
		Visible uint8
		hidden  uint8
	}
	at := ReflectProduct[withUnexported]().AlgebraicType()
	require.Len(t, at.Product.Elements, 1)
	assert.Equal(t, "Visible", *at.Product.Elements[0].Name)
}

func TestReflectProductBsatnTagOverridesName(t *testing.T) {
	type tagged struct {
		X int32 `bsatn:"x_coord"`
	}
	at := ReflectProduct[tagged]().AlgebraicType()
	require.Len(t, at.Product.Elements, 1)
	assert.Equal(t, "x_coord", *at.Product.Elements[0].Name)
}

func TestReflectProductSliceFieldRejectsCorruptLengthPrefixWithoutAllocating(t *testing.T) {
	codec := ReflectProduct[reflectedPlayer]()

	w := bsatn.NewWriter()
	w.WriteU64LE(1)               // ID
	w.WriteString("x")             // Nickname
	w.WriteBool(false)             // Online
	w.WriteU32LE(0xFFFFFFFF)       // Scores length prefix: corrupt
	require.NoError(t, w.Error())

	_, err := FromBytes(codec, w.Bytes())
	require.Error(t, err)
	assert.ErrorIs(t, err, bsatn.ErrLengthOverflow)
}
