package service

import (
	"Ripple/internal/pkg/redis"
	"os"
	"testing"

	redisv9 "github.com/redis/go-redis/v9"
)

func TestMain(m *testing.M) {
	// 单测不依赖真实 Redis，指向一个不存在的地址即可：
	// 缓存读写失败会被各调用点静默忽略，走直读文档的路径
	redis.Rdb = redisv9.NewClient(&redisv9.Options{Addr: "127.0.0.1:1"})
	os.Exit(m.Run())
}
