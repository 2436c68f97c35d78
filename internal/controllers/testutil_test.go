package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/utils"
)

// fakeCrudRepo is an in-memory stand-in for any entity repository.
// Updates are recorded as the raw field documents the controller
// produced, which is exactly what the update tests need to inspect.
type fakeCrudRepo[T any] struct {
	docs    map[primitive.ObjectID]T
	order   []primitive.ObjectID
	updates map[primitive.ObjectID]bson.M

	listErr   error
	insertErr error
}

func newFakeCrudRepo[T any]() *fakeCrudRepo[T] {
	return &fakeCrudRepo[T]{
		docs:    map[primitive.ObjectID]T{},
		updates: map[primitive.ObjectID]bson.M{},
	}
}

func (f *fakeCrudRepo[T]) List(ctx context.Context) ([]T, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []T{}
	for _, id := range f.order {
		out = append(out, f.docs[id])
	}
	return out, nil
}

func (f *fakeCrudRepo[T]) GetByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return &doc, nil
}

func (f *fakeCrudRepo[T]) Insert(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	if f.insertErr != nil {
		return primitive.NilObjectID, f.insertErr
	}
	id := primitive.NewObjectID()
	stored := *doc
	// The real repositories decode _id back into the model on reads;
	// mirror that so handlers see the document's ID.
	if field := reflect.ValueOf(&stored).Elem().FieldByName("ID"); field.IsValid() && field.CanSet() && field.Type() == reflect.TypeOf(id) {
		field.Set(reflect.ValueOf(id))
	}
	f.docs[id] = stored
	f.order = append(f.order, id)
	return id, nil
}

func (f *fakeCrudRepo[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	if _, ok := f.docs[id]; !ok {
		return utils.ErrNotFound
	}
	f.updates[id] = fields
	return nil
}

func (f *fakeCrudRepo[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.docs[id]; !ok {
		return utils.ErrNotFound
	}
	delete(f.docs, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

// doRequest routes a JSON request through the given router so mux path
// variables resolve like they do in production.
func doRequest(t *testing.T, router *mux.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(dst))
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var body utils.ErrorResponse
	decodeBody(t, rec, &body)
	return body
}
