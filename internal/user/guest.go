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

package user

import (
	"github.com/ecodeclub/checkin/internal/user/internal/service"
	"github.com/gotomicro/ego/core/econf"
)

// InitGuestNamer 读取 user 配置，没有配置时访客名字是 User0 到 User999
func InitGuestNamer() service.GuestNamer {
	type Config struct {
		GuestPrefix string `yaml:"guestPrefix"`
		GuestRange  int    `yaml:"guestRange"`
	}
	cfg := Config{GuestPrefix: "User", GuestRange: 1000}
	if econf.Get("user") != nil {
		if err := econf.UnmarshalKey("user", &cfg); err != nil {
			panic(err)
		}
	}
	if cfg.GuestRange <= 0 {
		cfg.GuestRange = 1000
	}
	return service.NewGuestNamer(cfg.GuestPrefix, cfg.GuestRange)
}
