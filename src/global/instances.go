package global

import "github.com/admiralbulldogtv/splicer/src/instances"

// Instance holds the services a context can reach. Mongo and Redis are nil
// when not configured.
type Instance struct {
	Mongo  instances.Mongo
	Redis  instances.Redis
	Voices instances.Voices
	TTS    instances.TTS
}
