// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/corruptabledb"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/musicvm/pebble"
	"github.com/ava-labs/musicvm/utils"
)

// New opens the pebble database [namespace] under [dataDir]. The returned
// registry gathers the database metrics.
func New(cfg pebble.Config, dataDir string, namespace string) (database.Database, *prometheus.Registry, error) {
	path, err := utils.InitSubDirectory(dataDir, namespace)
	if err != nil {
		return nil, nil, err
	}

	db, registry, err := pebble.New(path, cfg)
	if err != nil {
		return nil, nil, err
	}

	return corruptabledb.New(db), registry, nil
}
