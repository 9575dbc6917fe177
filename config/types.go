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

package config

// CheckinConfig 对应 local.yaml 的结构，ioc 里按 key 分段读取
type CheckinConfig struct {
	MySQL     MySQLConfig     `yaml:"mysql"`
	Redis     RedisConfig     `yaml:"redis"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Snowflake SnowflakeConfig `yaml:"snowflake"`
	User      UserConfig      `yaml:"user"`
	Trace     TraceConfig     `yaml:"trace"`
}

type MySQLConfig struct {
	DSN   string `yaml:"dsn"`
	Debug bool   `yaml:"debug"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Network   string        `yaml:"network"`
	Addresses []string      `yaml:"addresses"`
	Topics    []TopicConfig `yaml:"topics"`
}

type TopicConfig struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}

type SnowflakeConfig struct {
	NodeID int64 `yaml:"nodeId"`
}

type UserConfig struct {
	GuestPrefix string `yaml:"guestPrefix"`
	GuestRange  int    `yaml:"guestRange"`
}

type TraceConfig struct {
	Zipkin ZipkinConfig `yaml:"zipkin"`
}

const defaultServiceName = "checkin"

type ZipkinConfig struct {
	ServiceName    string `yaml:"serviceName"`
	ServiceVersion string `yaml:"serviceVersion"`
	Endpoint       string `yaml:"endpoint"`
}

// WithDefaults 没配服务名的时候用 checkin
func (c ZipkinConfig) WithDefaults() ZipkinConfig {
	if c.ServiceName == "" {
		c.ServiceName = defaultServiceName
	}
	return c
}
