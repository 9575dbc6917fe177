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

package dao

// Document 一个键对应一份完整的 JSON 文档
type Document struct {
	Key   string `gorm:"column:doc_key;primaryKey;type:varchar(64);comment:文档键"`
	Value string `gorm:"column:value;type:longtext;comment:JSON 文档内容"`
	Ctime int64
	Utime int64
}

func (Document) TableName() string {
	return "documents"
}
