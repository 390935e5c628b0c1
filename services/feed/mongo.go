package feed

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoSubscriber implements Subscriber over a MongoDB change stream on a
// single collection. Insert and update events are filtered server-side on
// the scope field; delete events carry no document and cannot be filtered,
// so collection-wide deletes are delivered and left to the consumer's
// idempotent apply to drop.
type MongoSubscriber[T Entity] struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewMongoSubscriber creates a change-stream subscriber for the given collection.
func NewMongoSubscriber[T Entity](coll *mongo.Collection, logger *zap.Logger) *MongoSubscriber[T] {
	return &MongoSubscriber[T]{coll: coll, logger: logger}
}

// changeDoc is the subset of the change-stream document this feed consumes.
type changeDoc[T Entity] struct {
	OperationType string `bson:"operationType"`
	DocumentKey   struct {
		ID string `bson:"_id"`
	} `bson:"documentKey"`
	FullDocument *T `bson:"fullDocument"`
}

// Subscribe opens the change stream for one scope. On failure it returns an
// error wrapping ErrSubscriptionFailed and does not retry.
func (s *MongoSubscriber[T]) Subscribe(ctx context.Context, scope Scope) (*Subscription[T], error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"operationType": bson.M{"$in": bson.A{"insert", "update", "replace", "delete"}},
			"$or": bson.A{
				bson.M{"fullDocument." + scope.Field: scope.Value},
				bson.M{"operationType": "delete"},
			},
		}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	stream, err := s.coll.Watch(ctx, pipeline, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s=%s: %v", ErrSubscriptionFailed, s.coll.Name(), scope.Field, scope.Value, err)
	}

	streamCtx, cancel := context.WithCancel(ctx)
	sub := &Subscription[T]{
		events: make(chan Event[T], 16),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go s.pump(streamCtx, stream, scope, sub)
	return sub, nil
}

// pump reads the change stream until cancellation or stream error,
// translating each change document into a typed event.
func (s *MongoSubscriber[T]) pump(ctx context.Context, stream *mongo.ChangeStream, scope Scope, sub *Subscription[T]) {
	defer close(sub.done)
	defer close(sub.events)
	defer func() {
		closeCtx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := stream.Close(closeCtx); err != nil {
			s.logger.Warn("change stream close failed",
				zap.String("collection", s.coll.Name()), zap.Error(err))
		}
	}()

	for stream.Next(ctx) {
		var doc changeDoc[T]
		if err := stream.Decode(&doc); err != nil {
			s.logger.Warn("undecodable change event skipped",
				zap.String("collection", s.coll.Name()), zap.Error(err))
			continue
		}

		event, ok := translate(doc)
		if !ok {
			continue
		}

		select {
		case sub.events <- event:
		case <-ctx.Done():
			return
		}
	}

	if err := stream.Err(); err != nil && ctx.Err() == nil {
		s.logger.Error("change stream ended",
			zap.String("collection", s.coll.Name()),
			zap.String(scope.Field, scope.Value),
			zap.Error(err))
	}
}

func translate[T Entity](doc changeDoc[T]) (Event[T], bool) {
	switch doc.OperationType {
	case "insert":
		if doc.FullDocument == nil {
			return Event[T]{}, false
		}
		return Event[T]{Op: OpInsert, ID: (*doc.FullDocument).EntityID(), Entity: doc.FullDocument}, true
	case "update", "replace":
		// fullDocument may be absent when the document was deleted between
		// the update and the lookup; the eventual delete event covers it.
		if doc.FullDocument == nil {
			return Event[T]{}, false
		}
		return Event[T]{Op: OpUpdate, ID: (*doc.FullDocument).EntityID(), Entity: doc.FullDocument}, true
	case "delete":
		return Event[T]{Op: OpDelete, ID: doc.DocumentKey.ID}, true
	default:
		return Event[T]{}, false
	}
}
