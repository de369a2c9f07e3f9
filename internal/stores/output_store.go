package stores

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"pageview-analytics/internal/shapers"
	"pageview-analytics/internal/shared/filestorages"
	"pageview-analytics/internal/shared/metrics"
	"pageview-analytics/internal/shared/svcerrors"
)

const (
	kindReport = "report"
	kindTree   = "tree"
)

// OutputStore publishes the documents of a run under keys derived from its run id.
// Run ids are unique, so an existing document is never replaced.
//
//go:generate mockgen -source=output_store.go -destination=./mocks/output_store_mock.go -package=mocks
type OutputStore interface {
	// PutReport stores a text report as "reports/<runID>.txt" and returns the key.
	PutReport(ctx context.Context, runID string, body io.Reader) (string, error)
	// PutTree stores a shaped tree as "trees/<runID>.<format>" and returns the key.
	PutTree(ctx context.Context, runID string, format TreeFormat, tree *shapers.ShapedNode) (string, error)
}

type outputStore struct {
	fileStorage filestorages.FileStorage
	reportDir   string
	treeDir     string
}

func NewOutputStore(fileStorage filestorages.FileStorage) OutputStore {
	return &outputStore{fileStorage: fileStorage, reportDir: "reports", treeDir: "trees"}
}

func (s *outputStore) PutReport(ctx context.Context, runID string, body io.Reader) (string, error) {
	key := fmt.Sprintf("%s/%s.txt", s.reportDir, runID)
	if err := s.put(ctx, kindReport, key, body); err != nil {
		return "", err
	}
	return key, nil
}

func (s *outputStore) PutTree(ctx context.Context, runID string, format TreeFormat, tree *shapers.ShapedNode) (string, error) {
	var buf bytes.Buffer
	if err := EncodeTree(&buf, format, tree); err != nil {
		s.count(kindTree, err)
		return "", err
	}

	key := fmt.Sprintf("%s/%s.%s", s.treeDir, runID, format)
	if err := s.put(ctx, kindTree, key, &buf); err != nil {
		return "", err
	}
	return key, nil
}

func (s *outputStore) put(ctx context.Context, kind, key string, r io.Reader) error {
	result, err := s.fileStorage.Put(ctx, key, r, filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		svcErr := errInternalPutFailed(key, err)
		s.count(kind, svcErr)
		return svcErr
	}
	s.count(kind, nil)
	metricBytesWrittenTotal.WithLabelValues(kind).Add(float64(result.Bytes))
	return nil
}

func (s *outputStore) count(kind string, err error) {
	errorCode := metrics.ValueNoError
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		errorCode = svcErr.Code
	}
	metricDocumentsWrittenTotal.WithLabelValues(kind, errorCode).Inc()
}
