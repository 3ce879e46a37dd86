package main

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/d60-Lab/futsalero/config"
	"github.com/d60-Lab/futsalero/internal/model"
	"github.com/d60-Lab/futsalero/internal/repository"
	"github.com/d60-Lab/futsalero/internal/service"
	"github.com/d60-Lab/futsalero/pkg/cache"
	"github.com/d60-Lab/futsalero/pkg/database"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func envInt(name string, def int) int {
	if s := os.Getenv(name); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func pct(vs []time.Duration, p float64) time.Duration {
	if len(vs) == 0 {
		return 0
	}
	xs := append([]time.Duration(nil), vs...)
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	k := int(math.Ceil(p*float64(len(xs)))) - 1
	if k < 0 {
		k = 0
	}
	if k >= len(xs) {
		k = len(xs) - 1
	}
	return xs[k]
}

// 压测排行榜：N 名球员，每人 MATCHES 场比赛、FOLLOWS 个关注，CONC 并发查询 Q 次
func main() {
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))
	if err := database.Migrate(db); err != nil {
		panic(err)
	}

	N := envInt("N", 2000)
	MATCHES := envInt("MATCHES", 10)
	FOLLOWS := envInt("FOLLOWS", 20)
	CONC := envInt("CONC", 4)
	Q := envInt("Q", 200)

	c := cache.Nop()
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		defer client.Close()
		c = cache.NewRedis(client, "rankbench:", cfg.Redis.ProfileTTL)
	}

	store := repository.NewStore(db)
	identity := service.NewIdentityRegistry(store, c, nil)
	social := service.NewSocialGraph(store, c)
	ledger := service.NewMatchLedger(store)
	ranking := service.NewRankingEngine(store)
	ctx := context.Background()
	cat := string(model.CategoryLocal)

	// seed
	t0 := time.Now()
	codes := make([]string, N)
	for i := range codes {
		p := must(identity.Register(ctx, "player", fmt.Sprintf("p%d", i)))
		codes[i] = p.Code
		for m := 0; m < MATCHES; m++ {
			must(ledger.RecordMatch(ctx, p.Code, cat, service.MatchStats{Points: rand.Int64N(4), Goals: rand.Int64N(3)}))
		}
	}
	for _, from := range codes {
		for f := 0; f < FOLLOWS; f++ {
			to := codes[rand.IntN(N)]
			if to != from {
				_, _ = social.Follow(ctx, from, to)
			}
		}
	}
	seedDur := time.Since(t0)

	run := func(scope string) ([]time.Duration, time.Duration) {
		recs := make([]time.Duration, 0, Q)
		var mu sync.Mutex
		feed := make(chan int, Q)
		for i := 0; i < Q; i++ {
			feed <- i
		}
		close(feed)
		start := time.Now()
		var wg sync.WaitGroup
		for w := 0; w < CONC; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range feed {
					viewer := codes[rand.IntN(N)]
					st := time.Now()
					_ = must(ranking.Rank(ctx, cat, scope, viewer))
					d := time.Since(st)
					mu.Lock()
					recs = append(recs, d)
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		return recs, time.Since(start)
	}

	profile := func() []time.Duration {
		recs := make([]time.Duration, 0, Q)
		for i := 0; i < Q; i++ {
			st := time.Now()
			_ = must(identity.Profile(ctx, codes[rand.IntN(N)]))
			recs = append(recs, time.Since(st))
		}
		return recs
	}

	globalRecs, globalDur := run(string(model.ScopeGlobal))
	friendRecs, friendDur := run(string(model.ScopeFriends))
	profRecs := profile()

	fmt.Printf("N=%d, MATCHES=%d, FOLLOWS=%d, CONC=%d, Q=%d, driver=%s\n", N, MATCHES, FOLLOWS, CONC, Q, cfg.Database.Driver)
	fmt.Printf("Seed: %v\n", seedDur)
	fmt.Printf("Rank global:  total %v, p50 %v, p95 %v, p99 %v\n", globalDur, pct(globalRecs, 0.50), pct(globalRecs, 0.95), pct(globalRecs, 0.99))
	fmt.Printf("Rank friends: total %v, p50 %v, p95 %v, p99 %v\n", friendDur, pct(friendRecs, 0.50), pct(friendRecs, 0.95), pct(friendRecs, 0.99))
	fmt.Printf("Profile (cache=%t): p50 %v, p95 %v\n", cfg.Redis.Addr != "", pct(profRecs, 0.50), pct(profRecs, 0.95))
}
