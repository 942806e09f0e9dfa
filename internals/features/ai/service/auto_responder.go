package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	report "laporkampus_backend/internals/features/reports/laporan/model"
)

// Submitter mengirim balasan lewat lifecycle laporan.
type Submitter interface {
	Respond(ctx context.Context, token string, r report.Report, message string) (map[string]any, error)
}

// Job satu balasan otomatis yang menunggu giliran.
type Job struct {
	ID       string
	Token    string
	Report   report.Report
	Template string // fallback kalau LLM gagal
}

const (
	JobQueued = "queued"
	JobSent   = "sent"
	JobFailed = "failed"
)

type JobStatus struct {
	ID       string `json:"id"`
	ReportID string `json:"reportId"`
	State    string `json:"state"`
	Source   string `json:"source,omitempty"` // llm | template
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

var ErrQueueFull = errors.New("antrean auto-response penuh")

// maxFinished batas status sent/failed yang disimpan; yang tertua dibuang.
const maxFinished = 500

// AutoResponder memproses antrean satu per satu dengan jeda tetap.
type AutoResponder struct {
	provider Provider
	submit   Submitter
	spacing  time.Duration
	queue    chan Job
	log      *zap.Logger

	mu       sync.RWMutex
	status   map[string]JobStatus
	finished []string // urutan id selesai, tertua di depan
	keep     int
}

func NewAutoResponder(p Provider, s Submitter, spacing time.Duration, log *zap.Logger) *AutoResponder {
	if log == nil {
		log = zap.NewNop()
	}
	return &AutoResponder{
		provider: p,
		submit:   s,
		spacing:  spacing,
		queue:    make(chan Job, 100),
		log:      log.Named("auto_responder"),
		status:   make(map[string]JobStatus),
		keep:     maxFinished,
	}
}

// Enqueue menaruh job ke antrean (non-blocking).
func (a *AutoResponder) Enqueue(job Job) (string, error) {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	// status dicatat dulu: worker bisa selesai sebelum Enqueue kembali
	a.setStatus(JobStatus{ID: job.ID, ReportID: job.Report.ID, State: JobQueued})
	select {
	case a.queue <- job:
	default:
		a.forget(job.ID)
		return "", ErrQueueFull
	}
	return job.ID, nil
}

func (a *AutoResponder) Status(id string) (JobStatus, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	s, ok := a.status[id]
	return s, ok
}

// Run memproses antrean sampai ctx selesai. Dipanggil di satu goroutine.
func (a *AutoResponder) Run(ctx context.Context) {
	a.log.Info("auto-responder jalan", zap.Duration("spacing", a.spacing))
	for {
		select {
		case <-ctx.Done():
			a.log.Info("auto-responder berhenti")
			return
		case job := <-a.queue:
			a.process(ctx, job)
			select {
			case <-ctx.Done():
				a.log.Info("auto-responder berhenti")
				return
			case <-time.After(a.spacing):
			}
		}
	}
}

func (a *AutoResponder) process(ctx context.Context, job Job) {
	msg, source := a.compose(ctx, job)
	st := JobStatus{ID: job.ID, ReportID: job.Report.ID, Source: source, Message: msg}
	if msg == "" {
		st.State = JobFailed
		st.Error = "tidak ada balasan AI maupun template"
		a.setStatus(st)
		return
	}
	if _, err := a.submit.Respond(ctx, job.Token, job.Report, msg); err != nil {
		a.log.Warn("auto-response gagal dikirim", zap.String("report", job.Report.ID), zap.Error(err))
		st.State = JobFailed
		st.Error = err.Error()
		a.setStatus(st)
		return
	}
	st.State = JobSent
	a.setStatus(st)
}

// compose minta balasan ke LLM; gagal → template statis.
func (a *AutoResponder) compose(ctx context.Context, job Job) (string, string) {
	if a.provider != nil {
		reply, err := Ask(ctx, a.provider, AdminInstruction, AutoResponsePrompt(job.Report))
		if err == nil && strings.TrimSpace(reply) != "" {
			return strings.TrimSpace(reply), "llm"
		}
		a.log.Info("fallback ke template", zap.String("report", job.Report.ID), zap.Error(err))
	}
	return strings.TrimSpace(job.Template), "template"
}

func (a *AutoResponder) setStatus(s JobStatus) {
	a.mu.Lock()
	defer a.mu.Unlock()
	prev, seen := a.status[s.ID]
	a.status[s.ID] = s
	if s.State == JobQueued || (seen && prev.State != JobQueued) {
		return
	}
	a.finished = append(a.finished, s.ID)
	for len(a.finished) > a.keep {
		delete(a.status, a.finished[0])
		a.finished = a.finished[1:]
	}
}

func (a *AutoResponder) forget(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.status, id)
}
