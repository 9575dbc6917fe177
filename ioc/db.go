// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ioc

import (
	"context"
	"database/sql"
	"time"

	"github.com/ecodeclub/checkin/config"
	"github.com/ecodeclub/checkin/internal/pkg/database"
	"github.com/ecodeclub/ekit/retry"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

func InitDB() *egorm.Component {
	var cfg config.MySQLConfig
	if err := econf.UnmarshalKey("mysql", &cfg); err != nil {
		panic(err)
	}
	WaitForDBSetup(cfg)
	db := egorm.Load("mysql").Build()
	err := db.Use(database.NewGormTracingPlugin())
	if err != nil {
		panic(err)
	}
	return db
}

// WaitForDBSetup 等 mysql 能 ping 通，重试耗尽直接 panic
func WaitForDBSetup(cfg config.MySQLConfig) {
	target := dsnTarget(cfg.DSN)
	sqlDB, err := sql.Open("mysql", cfg.DSN)
	if err != nil {
		elog.Panic("mysql dsn 不合法", elog.String("target", target), elog.FieldErr(err))
	}
	defer sqlDB.Close()
	strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, 10*time.Second, 10)
	if err != nil {
		panic(err)
	}
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = sqlDB.PingContext(ctx)
		cancel()
		if err == nil {
			return
		}
		next, ok := strategy.Next()
		if !ok {
			elog.Panic("等待 mysql 启动失败", elog.String("target", target), elog.FieldErr(err))
		}
		elog.Warn("mysql 还没就绪，稍后重试",
			elog.String("target", target),
			elog.Duration("next", next),
			elog.FieldErr(err))
		time.Sleep(next)
	}
}

// dsnTarget 日志里只打地址和库名，不带账号密码
func dsnTarget(dsn string) string {
	c, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "unknown"
	}
	return c.Addr + "/" + c.DBName
}
