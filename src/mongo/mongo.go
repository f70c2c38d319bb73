package mongo

import (
	"context"

	"github.com/admiralbulldogtv/splicer/src/datastructures"
	"github.com/admiralbulldogtv/splicer/src/instances"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionVoices    = "voices"
	CollectionSyntheses = "syntheses"
)

type mongoInstance struct {
	c  *mongo.Client
	db *mongo.Database
}

func (i *mongoInstance) Ping(ctx context.Context) error {
	return i.c.Ping(ctx, nil)
}

// FetchVoices returns every catalogue entry, disabled ones included.
func (i *mongoInstance) FetchVoices(ctx context.Context) ([]datastructures.VoiceConfig, error) {
	vcs := []datastructures.VoiceConfig{}
	cur, err := i.db.Collection(CollectionVoices).Find(ctx, bson.M{})
	if err == nil {
		err = cur.All(ctx, &vcs)
	}
	return vcs, err
}

func (i *mongoInstance) InsertSynthesis(ctx context.Context, s datastructures.Synthesis) error {
	_, err := i.db.Collection(CollectionSyntheses).InsertOne(ctx, s)
	return err
}

func NewInstance(ctx context.Context, uri, db string) (instances.Mongo, error) {
	c, err := mongo.NewClient(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	i := &mongoInstance{
		c:  c,
		db: c.Database(db),
	}

	if err = c.Connect(ctx); err != nil {
		return nil, err
	}

	if err = i.Ping(ctx); err != nil {
		_ = c.Disconnect(context.Background())
		return nil, err
	}

	return i, nil
}
