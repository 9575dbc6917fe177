package testioc

import (
	"os"
	"strconv"
	"sync"

	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/redis/go-redis/v9"
)

var (
	cache         ecache.Cache
	cacheInitOnce sync.Once
)

// InitCache 每个测试进程用独立的前缀
func InitCache() ecache.Cache {
	cacheInitOnce.Do(func() {
		cmd := redis.NewClient(&redis.Options{
			Addr: "localhost:6379",
		})
		cache = &ecache.NamespaceCache{
			C:         eredis.NewCache(cmd),
			Namespace: "checkin:test:" + strconv.Itoa(os.Getpid()) + ":",
		}
	})
	return cache
}
