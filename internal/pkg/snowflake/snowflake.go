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

package snowflake

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bwmarrin/snowflake"
)

// +-----------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp | 10 Bit NodeID | 12 Bit Sequence |
// +-----------------------------------------------------------------+

const maxNode int64 = 1<<10 - 1

var ErrExceedNode = errors.New("node超出限制")

type Generator interface {
	Generate() ID
}

type NodeGenerator struct {
	node *snowflake.Node
}

// NewNodeGenerator 部署多个实例的时候，每个实例的 nodeId 必须不同
func NewNodeGenerator(nodeId int64) (*NodeGenerator, error) {
	if nodeId < 0 || nodeId > maxNode {
		return nil, fmt.Errorf("%w: %d", ErrExceedNode, nodeId)
	}
	n, err := snowflake.NewNode(nodeId)
	if err != nil {
		return nil, err
	}
	return &NodeGenerator{node: n}, nil
}

func (g *NodeGenerator) Generate() ID {
	return ID(g.node.Generate())
}

type ID int64

func (f ID) Int64() int64 {
	return int64(f)
}

func (f ID) String() string {
	return strconv.FormatInt(int64(f), 10)
}

func (f ID) Node() int64 {
	return snowflake.ID(f).Node()
}

// Time 生成 ID 的时间
func (f ID) Time() time.Time {
	return time.UnixMilli(snowflake.ID(f).Time())
}
