// Command builddb loads a pedigree CSV, validates it, and populates the
// graph database with individuals and their relations.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/olavurmortensen/pedgraph/internal/core"
	"github.com/olavurmortensen/pedgraph/internal/driver"
	"github.com/olavurmortensen/pedgraph/internal/store"
)

func main() {
	uri := flag.String("uri", "bolt://localhost:7687", "URI of the graph database")
	user := flag.String("user", "", "Database username")
	password := flag.String("password", "", "Database password")
	csvPath := flag.String("csv", "", "Path to CSV pedigree file (required)")
	naID := flag.String("na-id", "0", "The ID used for missing parents")
	batchSize := flag.Int("batch-size", store.DefaultBatchSize, "Rows per write batch")
	flag.Parse()

	if *csvPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()
	if v := os.Getenv("NEO4J_URI"); v != "" {
		*uri = v
	}

	zl, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync()
	logger := zl.Sugar()

	fid, err := os.Open(*csvPath)
	if err != nil {
		logger.Fatalw("failed to open CSV", "path", *csvPath, "error", err)
	}
	defer fid.Close()

	ctx := context.Background()

	d, err := driver.NewNeo4jDriver(*uri, *user, *password, logger)
	if err != nil {
		logger.Fatalw("failed to connect to graph database", "uri", *uri, "error", err)
	}
	defer d.Close(ctx)

	adapter := store.NewAdapter(d, *batchSize, logger)
	service := core.NewService(adapter, *naID, logger)

	if err := service.BuildIndices(ctx); err != nil {
		logger.Fatalw("failed to build indices", "error", err)
	}

	result, err := service.BuildFromCSV(ctx, fid)
	if err != nil {
		logger.Fatalw("failed to build database", "error", err)
	}

	fmt.Printf("Loaded pedigree (op %s): %d persons, %d females, %d males, %d founders, %d leaves\n",
		result.OpID, result.Stats.Persons, result.Stats.Females, result.Stats.Males,
		result.Stats.Founders, result.Stats.Leaves)
	fmt.Printf("Edges: %d is_child, %d is_father, %d is_mother\n",
		result.Stats.ChildEdges, result.Stats.FatherEdges, result.Stats.MotherEdges)
}
