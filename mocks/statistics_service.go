package mocks

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/statsdigital/dp-region-peaks/models"
	"github.com/statsdigital/dp-region-peaks/sdk"
)

// ByteOrderMark is written before every data response, as the real service does
var ByteOrderMark = []byte{0xEF, 0xBB, 0xBF}

// RecordedRequest is a request received by the fake service
type RecordedRequest struct {
	Method string
	Path   string
	Body   string
}

// StatisticsService is a fake statistics service serving the unemployment table
type StatisticsService struct {
	Server *httptest.Server

	mu             sync.Mutex
	metadata       []byte
	metadataStatus int
	data           []byte
	dataStatus     int
	prefix         []byte
	requests       []RecordedRequest
}

// NewStatisticsService starts a fake service answering GET (metadata) and POST (data) on the table path
func NewStatisticsService() *StatisticsService {
	s := &StatisticsService{}
	s.Reset()

	router := mux.NewRouter()
	router.HandleFunc(sdk.TablePath, s.getMetadata).Methods(http.MethodGet)
	router.Handle(sdk.TablePath, alice.New(s.prefixBody).ThenFunc(s.postQuery)).Methods(http.MethodPost)

	s.Server = httptest.NewServer(alice.New(s.record).Then(router))
	return s
}

// URL returns the host to give to the sdk client
func (s *StatisticsService) URL() string {
	return s.Server.URL
}

// Close stops the server
func (s *StatisticsService) Close() {
	s.Server.Close()
}

// Reset restores empty successful responses and forgets recorded requests
func (s *StatisticsService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metadata = []byte(`{"title":"","variables":[]}`)
	s.metadataStatus = http.StatusOK
	s.data = []byte(`{"columns":[],"comments":[],"data":[]}`)
	s.dataStatus = http.StatusOK
	s.prefix = ByteOrderMark
	s.requests = nil
}

// SetMetadata sets the metadata response
func (s *StatisticsService) SetMetadata(meta models.DatasetMetadata) error {
	b, err := marshalWire(meta)
	if err != nil {
		return err
	}
	s.SetRawMetadata(b)
	return nil
}

// SetRawMetadata sets the metadata response body as is
func (s *StatisticsService) SetRawMetadata(body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metadata = body
}

// SetTable sets the data response
func (s *StatisticsService) SetTable(table models.Table) error {
	b, err := marshalWire(table)
	if err != nil {
		return err
	}
	s.SetRawData(b)
	return nil
}

// SetRawData sets the data response body, written after the prefix
func (s *StatisticsService) SetRawData(body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = body
}

// SetPrefix replaces the bytes written before the data response
func (s *StatisticsService) SetPrefix(prefix []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefix = prefix
}

// SetMetadataStatus sets the status code of the metadata response
func (s *StatisticsService) SetMetadataStatus(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metadataStatus = status
}

// SetDataStatus sets the status code of the data response
func (s *StatisticsService) SetDataStatus(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataStatus = status
}

// Requests returns the requests received since the last Reset
func (s *StatisticsService) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

func (s *StatisticsService) getMetadata(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	status, body := s.metadataStatus, s.metadata
	s.mu.Unlock()
	write(w, status, body)
}

func (s *StatisticsService) postQuery(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	status, body := s.dataStatus, s.data
	s.mu.Unlock()
	write(w, status, body)
}

func (s *StatisticsService) record(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(b))

		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{Method: r.Method, Path: r.URL.Path, Body: string(b)})
		s.mu.Unlock()

		h.ServeHTTP(w, r)
	})
}

func (s *StatisticsService) prefixBody(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		prefix := s.prefix
		s.mu.Unlock()
		h.ServeHTTP(&prefixWriter{ResponseWriter: w, prefix: prefix}, r)
	})
}

// prefixWriter writes prefix ahead of the first body bytes
type prefixWriter struct {
	http.ResponseWriter
	prefix  []byte
	written bool
}

func (p *prefixWriter) Write(b []byte) (int, error) {
	if !p.written {
		p.written = true
		if _, err := p.ResponseWriter.Write(p.prefix); err != nil {
			return 0, err
		}
	}
	return p.ResponseWriter.Write(b)
}

func write(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body) //nolint:errcheck
}

// marshalWire encodes v the way the service does, with "type" rather than "typeName"
func marshalWire(v interface{}) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return bytes.ReplaceAll(b, []byte(`"typeName"`), []byte(`"type"`)), nil
}
