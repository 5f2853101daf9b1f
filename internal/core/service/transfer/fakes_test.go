package transfer_test

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"chunkstream/internal/core/domain"

	"github.com/google/uuid"
)

// fakeTaskRepo is an in-memory task repository that records every saved
// progress value, so tests can assert on the whole progress trajectory of
// an asynchronous upload.
type fakeTaskRepo struct {
	mu          sync.Mutex
	tasks       map[uuid.UUID]domain.UploadTask
	progressLog map[uuid.UUID][]int
	saveErrFor  map[uuid.UUID]error

	// saveGate, when set, parks Save until closed. saveEntered receives a
	// non-blocking signal when a save reaches the gate.
	saveGate    chan struct{}
	saveEntered chan struct{}
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{
		tasks:       make(map[uuid.UUID]domain.UploadTask),
		progressLog: make(map[uuid.UUID][]int),
		saveErrFor:  make(map[uuid.UUID]error),
	}
}

func (r *fakeTaskRepo) Create(ctx context.Context, task domain.UploadTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[task.JobID] = task
	return nil
}

func (r *fakeTaskRepo) FindByJobID(ctx context.Context, jobID uuid.UUID) (*domain.UploadTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[jobID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, jobID)
	}
	return &task, nil
}

func (r *fakeTaskRepo) FindByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.UploadTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var tasks []domain.UploadTask
	for _, task := range r.tasks {
		if task.Status == status {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (r *fakeTaskRepo) gateSaves(gate, entered chan struct{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveGate, r.saveEntered = gate, entered
}

func (r *fakeTaskRepo) Save(ctx context.Context, task domain.UploadTask) error {
	r.mu.Lock()
	gate, entered := r.saveGate, r.saveEntered
	r.mu.Unlock()
	if gate != nil {
		if entered != nil {
			select {
			case entered <- struct{}{}:
			default:
			}
		}
		<-gate
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.saveErrFor[task.JobID]; err != nil {
		return err
	}
	r.tasks[task.JobID] = task
	r.progressLog[task.JobID] = append(r.progressLog[task.JobID], task.ProgressPercent)
	return nil
}

func (r *fakeTaskRepo) get(jobID uuid.UUID) (domain.UploadTask, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[jobID]
	return task, ok
}

func (r *fakeTaskRepo) progress(jobID uuid.UUID) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	log := make([]int, len(r.progressLog[jobID]))
	copy(log, r.progressLog[jobID])
	return log
}

type fakeObjectRepo struct {
	mu      sync.Mutex
	objects map[string]domain.FinalizedObject
}

func newFakeObjectRepo() *fakeObjectRepo {
	return &fakeObjectRepo{objects: make(map[string]domain.FinalizedObject)}
}

func (r *fakeObjectRepo) Create(ctx context.Context, object domain.FinalizedObject) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.objects[object.ObjectKey]; exists {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyCompleted, object.ObjectKey)
	}
	r.objects[object.ObjectKey] = object
	return nil
}

func (r *fakeObjectRepo) FindByKey(ctx context.Context, objectKey string) (*domain.FinalizedObject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	object, ok := r.objects[objectKey]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrObjectNotFound, objectKey)
	}
	return &object, nil
}

func (r *fakeObjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.FinalizedObject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, object := range r.objects {
		if object.ID == id {
			return &object, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrObjectNotFound, id)
}

type fakeSession struct {
	objectKey string
	parts     map[int][]byte
}

// fakeStorage is a stateful in-memory object store. Sessions accumulate
// parts, completion assembles them into a finalized object, and every
// uploaded part number is recorded in order for assertions.
type fakeStorage struct {
	mu          sync.Mutex
	nextSession int
	sessions    map[string]*fakeSession
	objects     map[string][]byte

	uploadedOrder  []int
	abortCalls     int
	failPartNumber int
	failPartErr    error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		sessions: make(map[string]*fakeSession),
		objects:  make(map[string][]byte),
	}
}

func (f *fakeStorage) CreateMultipartSession(ctx context.Context, objectKey string, contentType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextSession++
	sessionID := fmt.Sprintf("sess-%d", f.nextSession)
	f.sessions[sessionID] = &fakeSession{objectKey: objectKey, parts: make(map[int][]byte)}
	return sessionID, nil
}

// seedSession registers a session with pre-committed parts, as if a
// previous process had uploaded them before dying.
func (f *fakeStorage) seedSession(sessionID string, objectKey string, committed map[int][]byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session := &fakeSession{objectKey: objectKey, parts: make(map[int][]byte)}
	for partNumber, data := range committed {
		session.parts[partNumber] = append([]byte(nil), data...)
	}
	f.sessions[sessionID] = session
}

func (f *fakeStorage) PresignPartUpload(ctx context.Context, sessionID string, objectKey string, partNumber int) (string, *time.Time, error) {
	expiresAt := time.Now().Add(time.Hour)
	return fmt.Sprintf("https://store.local/%s/part/%d", sessionID, partNumber), &expiresAt, nil
}

func (f *fakeStorage) UploadPart(ctx context.Context, sessionID string, objectKey string, partNumber int, data []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failPartErr != nil && partNumber == f.failPartNumber {
		return "", f.failPartErr
	}
	session, ok := f.sessions[sessionID]
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	session.parts[partNumber] = append([]byte(nil), data...)
	f.uploadedOrder = append(f.uploadedOrder, partNumber)
	return fmt.Sprintf("etag-%d", partNumber), nil
}

func (f *fakeStorage) ListCommittedParts(ctx context.Context, sessionID string, objectKey string) ([]domain.UploadPart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	parts := make([]domain.UploadPart, 0, len(session.parts))
	for partNumber, data := range session.parts {
		parts = append(parts, domain.UploadPart{
			PartNumber: partNumber,
			ETag:       fmt.Sprintf("etag-%d", partNumber),
			SizeBytes:  int64(len(data)),
		})
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].PartNumber < parts[j].PartNumber })
	return parts, nil
}

func (f *fakeStorage) CompleteMultipartUpload(ctx context.Context, sessionID string, objectKey string, parts []domain.UploadPart) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[sessionID]
	if !ok {
		return "", domain.ErrSessionNotFound
	}

	var assembled bytes.Buffer
	for _, part := range parts {
		data, ok := session.parts[part.PartNumber]
		if !ok {
			return "", fmt.Errorf("part %d never uploaded", part.PartNumber)
		}
		assembled.Write(data)
	}
	f.objects[objectKey] = assembled.Bytes()
	delete(f.sessions, sessionID)
	return "etag-final", nil
}

func (f *fakeStorage) AbortMultipartUpload(ctx context.Context, sessionID string, objectKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.abortCalls++
	delete(f.sessions, sessionID)
	return nil
}

func (f *fakeStorage) StatObject(ctx context.Context, objectKey string) (*domain.ObjectStat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[objectKey]
	if !ok {
		return nil, fmt.Errorf("object %s not found", objectKey)
	}
	return &domain.ObjectStat{SizeBytes: int64(len(data)), ETag: "etag-final"}, nil
}

func (f *fakeStorage) PresignDownload(ctx context.Context, objectKey string) (string, *time.Time, error) {
	expiresAt := time.Now().Add(15 * time.Minute)
	return fmt.Sprintf("https://store.local/download/%s", objectKey), &expiresAt, nil
}

func (f *fakeStorage) uploaded() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	order := make([]int, len(f.uploadedOrder))
	copy(order, f.uploadedOrder)
	return order
}

func (f *fakeStorage) object(objectKey string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[objectKey]
	return data, ok
}

func (f *fakeStorage) sessionCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sessions)
}

func (f *fakeStorage) aborts() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.abortCalls
}

func (f *fakeStorage) setPartFailure(partNumber int, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failPartNumber = partNumber
	f.failPartErr = err
}

type fakePublisher struct {
	mu     sync.Mutex
	events []domain.UploadCompletedEvent
}

func (p *fakePublisher) PublishUploadCompleted(ctx context.Context, event domain.UploadCompletedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

func (p *fakePublisher) published() []domain.UploadCompletedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	events := make([]domain.UploadCompletedEvent, len(p.events))
	copy(events, p.events)
	return events
}
