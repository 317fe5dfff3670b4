package testing

import (
	"context"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/elasticsearch"
)

const esTestPassword = "calc-test"

// ESContainer represents a running Elasticsearch test container
type ESContainer struct {
	Container testcontainers.Container
	Address   string
	Username  string
	Password  string
	CACert    []byte
}

// NewESContainer starts Elasticsearch and terminates it when the test ends.
// The test is skipped under -short or without Docker.
func NewESContainer(ctx context.Context, t *testing.T) *ESContainer {
	t.Helper()
	skipWithoutDocker(t)

	esContainer, err := elasticsearch.Run(ctx,
		"docker.elastic.co/elasticsearch/elasticsearch:8.12.0",
		elasticsearch.WithPassword(esTestPassword),
	)
	if err != nil {
		t.Fatalf("failed to start elasticsearch container: %v", err)
	}

	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(esContainer); err != nil {
			t.Logf("failed to terminate elasticsearch container: %v", err)
		}
	})

	return &ESContainer{
		Container: esContainer,
		Address:   esContainer.Settings.Address,
		Username:  "elastic",
		Password:  esContainer.Settings.Password,
		CACert:    esContainer.Settings.CACert,
	}
}
