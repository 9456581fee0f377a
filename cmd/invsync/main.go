/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/routeops/invsync/pkg/cache"
	"github.com/routeops/invsync/pkg/config"
	"github.com/routeops/invsync/pkg/importer"
	"github.com/routeops/invsync/pkg/inventory"
	"github.com/routeops/invsync/pkg/jobs"
	"github.com/routeops/invsync/pkg/logger"
	"github.com/routeops/invsync/pkg/match"
	"github.com/routeops/invsync/pkg/models"
	"github.com/routeops/invsync/pkg/naming"
	"github.com/routeops/invsync/pkg/provider"
	"github.com/routeops/invsync/pkg/validate"
	"github.com/routeops/invsync/pkg/vc"
)

var (
	errNoProviderEndpoint  = errors.New("provider.endpoint is required")
	errNoInventoryEndpoint = errors.New("inventory.endpoint is required")
)

type appConfig struct {
	Provider  provider.Config  `json:"provider"`
	Inventory inventory.Config `json:"inventory"`
	Naming    naming.Config    `json:"naming"`
	Jobs      jobs.Config      `json:"jobs"`

	// CacheURL is a redis:// URL; empty selects the in-process store.
	CacheURL      string          `json:"cache_url"`
	FetchCacheTTL models.Duration `json:"fetch_cache_ttl"`
	VCCacheTTL    models.Duration `json:"vc_cache_ttl"`

	Logging *logger.Config `json:"logging"`
}

func (c *appConfig) Validate() error {
	if c.Provider.Endpoint == "" {
		return errNoProviderEndpoint
	}

	if c.Inventory.Endpoint == "" {
		return errNoInventoryEndpoint
	}

	return nil
}

func main() {
	configPath := flag.String("config", "/etc/invsync/invsync.json", "Path to config file")
	deviceList := flag.String("devices", "", "Comma-separated device ids to import; empty imports by filter")
	location := flag.String("location", "", "Filter: location")
	devType := flag.String("type", "", "Filter: device type")
	osFilter := flag.String("os", "", "Filter: operating system")
	enabledOnly := flag.Bool("enabled-only", true, "Filter: skip disabled devices")
	background := flag.Bool("background", true, "Run as a cancellable background job")
	vcDetection := flag.Bool("vc", true, "Detect virtual-chassis membership")
	setPrimaryIP := flag.Bool("primary-ip", true, "Assign primary addresses after create")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg appConfig

	cfgLoader := config.NewConfig(nil)
	if err := cfgLoader.LoadAndValidate(ctx, *configPath, &cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	deviceIDs, err := parseDeviceIDs(*deviceList)
	if err != nil {
		log.Fatalf("Invalid -devices value: %v", err)
	}

	store, err := newCacheStore(&cfg)
	if err != nil {
		log.Fatalf("Failed to connect cache: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			appLogger.Warn().Err(err).Msg("Cache close failed")
		}
	}()

	orchestrator, client := wire(&cfg, store, appLogger)

	req := &jobs.Request{
		DeviceIDs: deviceIDs,
		Filters: models.DeviceFilters{
			Location:    *location,
			Type:        *devType,
			OS:          *osFilter,
			EnabledOnly: *enabledOnly,
		},
		Sync:        importer.SyncOptions{SetPrimaryIP: *setPrimaryIP},
		VCDetection: *vcDetection,
		Background:  background,
	}

	result, err := orchestrator.Start(ctx, req)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Import failed to start")
	}

	if result.JobID == "" {
		printJSON(result.Bulk)
		return
	}

	appLogger.Info().Str("job_id", result.JobID).Str("server", client.ServerKey()).
		Msg("Waiting for background job")

	// Cancel the job cooperatively on the first signal, then wait for the
	// ledger it produced so far.
	go func() {
		<-ctx.Done()
		orchestrator.Cancel(result.JobID)
	}()

	orchestrator.Wait()

	payloads, record := orchestrator.LoadJobResults(context.Background(), result.JobID)
	printJSON(struct {
		Job      *models.JobRecord      `json:"job"`
		Payloads []models.DevicePayload `json:"payloads"`
	}{Job: record, Payloads: payloads})
}

// wire builds the pipeline: provider (circuit-broken, read-through cached) →
// matcher/validator → executor → orchestrator.
func wire(cfg *appConfig, store cache.KVStore, appLogger logger.Logger) (*jobs.Orchestrator, *provider.Client) {
	client := provider.NewClient(cfg.Provider, appLogger)

	var deviceProvider provider.DeviceProvider = client
	if ttl := time.Duration(cfg.FetchCacheTTL); ttl > 0 {
		deviceProvider = provider.NewCachedProvider(client, store, client.ServerKey(), ttl, appLogger)
	}

	invStore := inventory.NewNetboxStore(cfg.Inventory, appLogger)
	matcher := match.NewMatcher(invStore, appLogger)
	validator := validate.NewValidator(invStore, matcher, appLogger)
	detector := vc.NewDetector(deviceProvider, store, time.Duration(cfg.VCCacheTTL), appLogger)

	resolver, err := naming.NewResolver(cfg.Naming)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Invalid naming configuration")
	}

	executor := importer.NewExecutor(deviceProvider, invStore, validator, resolver, detector, appLogger)

	jobsCfg := cfg.Jobs
	if jobsCfg.ServerKey == "" {
		jobsCfg.ServerKey = client.ServerKey()
	}

	return jobs.NewOrchestrator(executor, deviceProvider, store, jobsCfg, appLogger), client
}

func newCacheStore(cfg *appConfig) (cache.KVStore, error) {
	if cfg.CacheURL == "" {
		return cache.NewMemoryStore(), nil
	}

	return cache.NewRedisStore(cfg.CacheURL)
}

func parseDeviceIDs(list string) ([]int64, error) {
	if list == "" {
		return nil, nil
	}

	parts := strings.Split(list, ",")
	ids := make([]int64, 0, len(parts))

	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, nil
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		log.Fatalf("Failed to encode output: %v", err)
	}
}
