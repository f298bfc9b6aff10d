// Package appwritetest is an in-memory stand-in for the remote platform,
// covering only the REST surface this layer calls. Tests mount it on an
// httptest server and point the real client at it.
package appwritetest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type account struct {
	id       string
	email    string
	name     string
	password []byte
}

type document struct {
	id      string
	created time.Time
	data    map[string]any
}

type storedFile struct {
	id       string
	name     string
	mimeType string
	size     int64
}

// Server holds the fake's state behind one mutex; it is not a platform
// implementation, just enough bookkeeping to answer the client's requests.
type Server struct {
	mu          sync.Mutex
	clock       time.Time
	accounts    []account
	sessions    map[string]string // token -> account id
	collections map[string][]document
	files       map[string]storedFile
	failCreates int
}

func New() *Server {
	return &Server{
		clock:       time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		sessions:    make(map[string]string),
		collections: make(map[string][]document),
		files:       make(map[string]storedFile),
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Post("/account", s.createAccount)
		r.Get("/account", s.getAccount)
		r.Post("/account/sessions/email", s.createSession)
		r.Delete("/account/sessions/{id}", s.deleteSession)
		r.Post("/databases/{database}/collections/{collection}/documents", s.createDocument)
		r.Get("/databases/{database}/collections/{collection}/documents", s.listDocuments)
		r.Post("/storage/buckets/{bucket}/files", s.createFile)
		r.Delete("/storage/buckets/{bucket}/files/{file}", s.deleteFile)
	})
	return r
}

// SeedDocument inserts a document directly, bypassing auth, and returns its
// id. Each insertion advances the fake clock by one second.
func (s *Server) SeedDocument(collectionID string, data map[string]any) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.insertLocked(collectionID, uuid.NewString(), data)
	return doc.id
}

// FailDocumentCreates makes the next n document create calls answer with a
// server error, for exercising the caller's failure handling.
func (s *Server) FailDocumentCreates(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failCreates = n
}

// HasFile reports whether a stored file with the given id still exists.
func (s *Server) HasFile(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.files[id]
	return ok
}

// FileCount returns how many stored files the bucket holds.
func (s *Server) FileCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.files)
}

func (s *Server) insertLocked(collectionID, id string, data map[string]any) document {
	s.clock = s.clock.Add(time.Second)
	doc := document{
		id:      id,
		created: s.clock,
		data:    data,
	}
	s.collections[collectionID] = append(s.collections[collectionID], doc)
	return doc
}

func (s *Server) authenticated(r *http.Request) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.sessions[r.Header.Get("X-Fallback-Cookies")]
	return id, ok
}

func (s *Server) createAccount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID   string `json:"userId"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "general_bad_request", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.email == req.Email {
			fail(w, http.StatusConflict, "user_already_exists", "a user with the same email already exists")
			return
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.MinCost)
	if err != nil {
		fail(w, http.StatusInternalServerError, "general_server_error", err.Error())
		return
	}

	s.accounts = append(s.accounts, account{
		id:       req.UserID,
		email:    req.Email,
		name:     req.Name,
		password: hash,
	})
	respond(w, http.StatusCreated, map[string]any{
		"$id":   req.UserID,
		"email": req.Email,
		"name":  req.Name,
	})
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "general_bad_request", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.email != req.Email {
			continue
		}
		if bcrypt.CompareHashAndPassword(a.password, []byte(req.Password)) != nil {
			break
		}

		token := uuid.NewString()
		s.sessions[token] = a.id
		w.Header().Set("X-Fallback-Cookies", token)
		respond(w, http.StatusCreated, map[string]any{
			"$id":    token,
			"userId": a.id,
			"expire": s.clock.Add(365 * 24 * time.Hour).Format(time.RFC3339),
		})
		return
	}

	fail(w, http.StatusUnauthorized, "user_invalid_credentials", "invalid credentials")
}

func (s *Server) getAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := s.authenticated(r)
	if !ok {
		fail(w, http.StatusUnauthorized, "general_unauthorized_scope", "missing scope (account)")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.id == id {
			respond(w, http.StatusOK, map[string]any{
				"$id":   a.id,
				"email": a.email,
				"name":  a.name,
			})
			return
		}
	}
	fail(w, http.StatusNotFound, "user_not_found", "user not found")
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("X-Fallback-Cookies")
	if _, ok := s.authenticated(r); !ok {
		fail(w, http.StatusUnauthorized, "general_unauthorized_scope", "missing scope (account)")
		return
	}

	id := chi.URLParam(r, "id")
	if id != "current" && id != token {
		fail(w, http.StatusNotFound, "user_session_not_found", "session not found")
		return
	}

	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) createDocument(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authenticated(r); !ok {
		fail(w, http.StatusUnauthorized, "general_unauthorized_scope", "missing scope (documents.write)")
		return
	}

	var req struct {
		DocumentID string         `json:"documentId"`
		Data       map[string]any `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "general_bad_request", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failCreates > 0 {
		s.failCreates--
		fail(w, http.StatusInternalServerError, "general_server_error", "document create failed")
		return
	}

	id := req.DocumentID
	if id == "" {
		id = uuid.NewString()
	}
	doc := s.insertLocked(chi.URLParam(r, "collection"), id, req.Data)
	respond(w, http.StatusCreated, renderDocument(doc))
}

func (s *Server) listDocuments(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection := chi.URLParam(r, "collection")
	docs := append([]document(nil), s.collections[collection]...)

	limit := 0
	for _, raw := range r.URL.Query()["queries[]"] {
		var q struct {
			Method    string `json:"method"`
			Attribute string `json:"attribute"`
			Values    []any  `json:"values"`
		}
		if err := json.Unmarshal([]byte(raw), &q); err != nil {
			fail(w, http.StatusBadRequest, "general_query_invalid", err.Error())
			return
		}

		switch q.Method {
		case "equal":
			docs = filter(docs, func(d document) bool {
				return len(q.Values) > 0 && d.data[q.Attribute] == q.Values[0]
			})
		case "search":
			// The real search index does stemming and scoring; substring
			// matching is close enough for the callers under test.
			docs = filter(docs, func(d document) bool {
				text, _ := d.data[q.Attribute].(string)
				needle, _ := q.Values[0].(string)
				return strings.Contains(strings.ToLower(text), strings.ToLower(needle))
			})
		case "orderDesc":
			if q.Attribute != "$createdAt" {
				fail(w, http.StatusBadRequest, "general_query_invalid", "unsupported order attribute "+q.Attribute)
				return
			}
			reverse(docs)
		case "limit":
			if f, ok := q.Values[0].(float64); ok {
				limit = int(f)
			}
		default:
			fail(w, http.StatusBadRequest, "general_query_invalid", "unsupported query method "+q.Method)
			return
		}
	}

	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}

	rendered := make([]map[string]any, 0, len(docs))
	for _, d := range docs {
		rendered = append(rendered, renderDocument(d))
	}
	respond(w, http.StatusOK, map[string]any{
		"total":     len(rendered),
		"documents": rendered,
	})
}

func (s *Server) createFile(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authenticated(r); !ok {
		fail(w, http.StatusUnauthorized, "general_unauthorized_scope", "missing scope (files.write)")
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		fail(w, http.StatusBadRequest, "general_bad_request", err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		fail(w, http.StatusBadRequest, "general_bad_request", "missing file part")
		return
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		fail(w, http.StatusInternalServerError, "general_server_error", err.Error())
		return
	}

	stored := storedFile{
		id:       r.FormValue("fileId"),
		name:     header.Filename,
		mimeType: header.Header.Get("Content-Type"),
		size:     int64(len(content)),
	}
	if stored.id == "" {
		stored.id = uuid.NewString()
	}

	s.mu.Lock()
	s.files[stored.id] = stored
	s.mu.Unlock()

	respond(w, http.StatusCreated, map[string]any{
		"$id":          stored.id,
		"name":         stored.name,
		"mimeType":     stored.mimeType,
		"sizeOriginal": stored.size,
	})
}

func (s *Server) deleteFile(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authenticated(r); !ok {
		fail(w, http.StatusUnauthorized, "general_unauthorized_scope", "missing scope (files.write)")
		return
	}

	id := chi.URLParam(r, "file")
	s.mu.Lock()
	_, ok := s.files[id]
	delete(s.files, id)
	s.mu.Unlock()

	if !ok {
		fail(w, http.StatusNotFound, "storage_file_not_found", "file not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func renderDocument(d document) map[string]any {
	rendered := map[string]any{
		"$id":        d.id,
		"$createdAt": d.created.Format(time.RFC3339),
	}
	for k, v := range d.data {
		rendered[k] = v
	}
	return rendered
}

func respond(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func fail(w http.ResponseWriter, status int, kind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"message":%q,"code":%d,"type":%q}`, message, status, kind)
}

func filter(docs []document, keep func(document) bool) []document {
	kept := docs[:0:0]
	for _, d := range docs {
		if keep(d) {
			kept = append(kept, d)
		}
	}
	return kept
}

func reverse(docs []document) {
	for i, j := 0, len(docs)-1; i < j; i, j = i+1, j-1 {
		docs[i], docs[j] = docs[j], docs[i]
	}
}
