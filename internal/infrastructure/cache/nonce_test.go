package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"
)

func TestRedisNonces_SequentialPerKindAndAccount(t *testing.T) {
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	ctx := context.Background()
	n := NewRedisNonces(rdb)
	a := common.HexToAddress("0xAbCdEf0000000000000000000000000000000001")
	b := common.HexToAddress("0x0000000000000000000000000000000000000002")

	for want := uint64(0); want < 3; want++ {
		got, err := n.Next(ctx, "withdrawal", a)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if got != want {
			t.Fatalf("nonce = %d, want %d", got, want)
		}
	}

	// other kinds and other accounts have their own sequence
	if got, _ := n.Next(ctx, "repayment", a); got != 0 {
		t.Fatalf("repayment nonce = %d, want 0", got)
	}
	if got, _ := n.Next(ctx, "withdrawal", b); got != 0 {
		t.Fatalf("other account nonce = %d, want 0", got)
	}

	// key is case-normalised
	if v, err := s.Get("nonce:withdrawal:0xabcdef0000000000000000000000000000000001"); err != nil || v != "3" {
		t.Fatalf("stored counter = %q (%v), want 3", v, err)
	}
}

func TestRedisNonces_RedisDown(t *testing.T) {
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	s.Close()

	if _, err := NewRedisNonces(rdb).Next(context.Background(), "withdrawal", common.Address{}); err == nil {
		t.Fatal("expected error when redis is unavailable")
	}
}
