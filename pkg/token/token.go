package token

import (
	"fmt"
	"time"

	"github.com/hertz-contrib/jwt"

	"WorkTrail/config"
)

// 身份签发在租户中台完成，本服务只校验 token。
// claims 约定：uid = 用户 public_id，cid = 所属公司 id。
const (
	IdentityKey = "uid"
	CompanyKey  = "cid"
)

var (
	// 这个实例会被 middleware 共享使用
	sharedGenerator *jwt.HertzJWTMiddleware
)

func Init() error {
	var err error
	sharedGenerator, err = jwt.New(&jwt.HertzJWTMiddleware{
		Key:         []byte(config.Cfg.JWTSecret),
		Timeout:     time.Duration(config.Cfg.JWTExpireMinutes) * time.Minute,
		MaxRefresh:  time.Duration(config.Cfg.JWTRefreshDays) * 24 * time.Hour,
		IdentityKey: IdentityKey,
		TimeFunc:    time.Now,
	})

	if err != nil {
		return fmt.Errorf("failed to initialize token generator: %w", err)
	}

	return nil
}

// GetGenerator 获取共享的 token 生成器（供 middleware 使用）
func GetGenerator() *jwt.HertzJWTMiddleware {
	return sharedGenerator
}
