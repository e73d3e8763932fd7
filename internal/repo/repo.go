package repo

import (
	"time"

	"github.com/eshonkulov-asliddin/bonus-shop/internal/cache"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/pg"
	cacherepo "github.com/eshonkulov-asliddin/bonus-shop/internal/repo/cache-repo"
	redisrepo "github.com/eshonkulov-asliddin/bonus-shop/internal/repo/redis-repo"
	sessionrepo "github.com/eshonkulov-asliddin/bonus-shop/internal/repo/session-repo"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/service/sessionservice"
	"github.com/redis/go-redis/v9"
)

type Repositories struct {
	Durable  cache.Durable
	Sessions sessionservice.Store
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		Durable:  cacherepo.New(conn),
		Sessions: sessionrepo.New(conn),
	}
}

// NewRedis keeps both the durable cache tier and the session in one Redis.
func NewRedis(client *redis.Client, maxAge time.Duration) *Repositories {
	r := redisrepo.New(client, maxAge)
	return &Repositories{
		Durable:  r,
		Sessions: r,
	}
}
