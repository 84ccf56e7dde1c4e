package driver

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
)

// Neo4jDriver is the bolt-backed GraphDriver. Neo4j and Memgraph both speak
// the protocol and the Cypher used here.
type Neo4jDriver struct {
	Driver neo4j.DriverWithContext
	logger *zap.SugaredLogger
}

func NewNeo4jDriver(uri, username, password string, logger *zap.SugaredLogger) (*Neo4jDriver, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}

	if err := driver.VerifyConnectivity(context.Background()); err != nil {
		return nil, err
	}

	logger.Infow("connected to graph database", "uri", uri)
	return &Neo4jDriver{Driver: driver, logger: logger}, nil
}

func (d *Neo4jDriver) Close(ctx context.Context) error {
	return d.Driver.Close(ctx)
}

func (d *Neo4jDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, d.Driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return neo4j.EagerResult{}, fmt.Errorf("failed to execute query: %w", err)
	}
	return *result, nil
}

// BuildIndices creates the uniqueness constraint and index on Person.ind.
// Indexing individual ids matters a lot for ancestor queries.
func (d *Neo4jDriver) BuildIndices(ctx context.Context) error {
	queries := []string{
		"CREATE CONSTRAINT index_ind IF NOT EXISTS FOR (p:Person) REQUIRE p.ind IS UNIQUE;",
		"CREATE INDEX index_founder IF NOT EXISTS FOR (p:Founder) ON (p.ind);",
		"CREATE INDEX index_leaf IF NOT EXISTS FOR (p:Leaf) ON (p.ind);",
	}

	for _, q := range queries {
		if _, err := d.ExecuteQuery(ctx, q, nil); err != nil {
			// Constraint may already exist on older servers without IF NOT EXISTS.
			d.logger.Warnw("failed to create index", "query", q, "error", err)
		}
	}

	return nil
}
