// Package statsd is a helper package that wraps some common statsd methods.
// It hides the datadog dependency so if we decide to migrate away from datadog
// in the future, we only need to edit this single file.
package statsd

import (
	"time"

	ddstatsd "github.com/DataDog/datadog-go/v5/statsd"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
)

var client ddstatsd.ClientInterface = &ddstatsd.NoOpClient{}

func Client() ddstatsd.ClientInterface {
	return client
}

// EmitFlushStat reports how long a command-queue flush took and how many
// commands it applied.
func EmitFlushStat(start time.Time, commands int) {
	duration := time.Since(start)
	if err := Client().Timing("flush", duration, nil, 1); err != nil {
		log.Logger.Warn().Msgf("failed to emit flush stat: %v", err)
	}
	if err := Client().Count("flush.commands", int64(commands), nil, 1); err != nil {
		log.Logger.Warn().Msgf("failed to emit flush stat: %v", err)
	}
}

// EmitStoreGauges reports the current entity and archetype counts.
func EmitStoreGauges(entities int, archetypes int) {
	if err := Client().Gauge("entities", float64(entities), nil, 1); err != nil {
		log.Logger.Warn().Msgf("failed to emit store gauge: %v", err)
	}
	if err := Client().Gauge("archetypes", float64(archetypes), nil, 1); err != nil {
		log.Logger.Warn().Msgf("failed to emit store gauge: %v", err)
	}
}

func Init(address string, tags []string) error {
	if address == "" {
		return eris.New("address must not be empty")
	}
	opts := []ddstatsd.Option{
		// The statsd namespace is the prefix of all metrics
		ddstatsd.WithNamespace("archon"),
	}
	if len(tags) > 0 {
		opts = append(opts, ddstatsd.WithTags(tags))
	}

	newClient, err := ddstatsd.New(address, opts...)
	if err != nil {
		return err
	}
	// Success! replace the global client
	client = newClient
	return nil
}
