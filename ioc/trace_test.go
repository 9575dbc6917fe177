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
	"testing"

	"github.com/ecodeclub/checkin/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

func TestServiceAttrs(t *testing.T) {
	attrs := serviceAttrs(config.ZipkinConfig{}.WithDefaults())
	assert.Len(t, attrs, 1)
	assert.Equal(t, semconv.ServiceName("checkin"), attrs[0])

	attrs = serviceAttrs(config.ZipkinConfig{ServiceName: "checkin", ServiceVersion: "v0.1.0"})
	assert.Len(t, attrs, 2)
	assert.Equal(t, semconv.ServiceVersion("v0.1.0"), attrs[1])
}

func TestNewZipkinProvider(t *testing.T) {
	tp, err := newZipkinProvider(config.ZipkinConfig{
		ServiceName: "checkin",
		Endpoint:    "http://localhost:9411/api/v2/spans",
	})
	require.NoError(t, err)
	require.NoError(t, tp.Shutdown(context.Background()))
}
