// Package analysis implements the simulated file upload and AI analysis
// flow. No real parsing or inference happens: uploads advance through fixed
// timer ticks and results are randomized mock shapes. Timing comes from an
// injectable Clock so the whole flow is deterministic under test.
package analysis

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

type FileStatus string

const (
	StatusQueued     FileStatus = "queued"
	StatusUploading  FileStatus = "uploading"
	StatusProcessing FileStatus = "processing"
	StatusCompleted  FileStatus = "completed"
	// StatusError is reachable in the state machine but the mock processor
	// never produces it; it exists so the record stays complete.
	StatusError FileStatus = "error"
)

// UploadedFile tracks one simulated upload.
type UploadedFile struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Size        int64       `json:"size"`
	ContentType string      `json:"type"`
	Status      FileStatus  `json:"status"`
	Progress    int         `json:"progress"`
	Report      *FileReport `json:"report,omitempty"`
}

// FileReport is the randomized per-file mock result.
type FileReport struct {
	Properties       int              `json:"properties"`
	TotalValue       int              `json:"totalValue"`
	AvgScore         int              `json:"avgScore"`
	RiskDistribution RiskDistribution `json:"riskDistribution"`
	Trends           []TrendPoint     `json:"trends"`
}

type RiskDistribution struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

type TrendPoint struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// Result is the aggregate produced by RunAnalysis over completed files.
type Result struct {
	TotalProperties int            `json:"totalProperties"`
	TotalValue      int            `json:"totalValue"`
	AvgScore        int            `json:"avgScore"`
	FilesProcessed  int            `json:"filesProcessed"`
	Trends          []MonthlyTrend `json:"trends"`
	Sectors         []SectorShare  `json:"sectors"`
	Cities          []CityScore    `json:"cities"`
}

type MonthlyTrend struct {
	Month    string `json:"month"`
	Analyzed int    `json:"analyzed"`
	Verified int    `json:"verified"`
}

type SectorShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type CityScore struct {
	Name       string `json:"name"`
	Score      int    `json:"score"`
	Properties int    `json:"properties"`
}

// Timings control the simulated delays.
type Timings struct {
	UploadTick    time.Duration
	ProcessDelay  time.Duration
	AnalysisDelay time.Duration
}

func DefaultTimings() Timings {
	return Timings{
		UploadTick:    200 * time.Millisecond,
		ProcessDelay:  2 * time.Second,
		AnalysisDelay: 3 * time.Second,
	}
}

// Notifier receives lifecycle events from the pipeline; the state container
// plugs in here so completed files and analyses land in the notification log.
type Notifier interface {
	FileProcessed(name string)
	AnalysisComplete(filesProcessed int)
}

// FileMeta is the caller-supplied description of an incoming file. Contents
// are never inspected.
type FileMeta struct {
	Name        string
	Size        int64
	ContentType string
}

type Pipeline struct {
	mu     sync.Mutex
	files  []*UploadedFile
	result *Result

	clock    Clock
	timings  Timings
	notifier Notifier
	rng      *rand.Rand
}

func NewPipeline(clock Clock, timings Timings, notifier Notifier) *Pipeline {
	return &Pipeline{
		clock:    clock,
		timings:  timings,
		notifier: notifier,
		rng:      rand.New(rand.NewSource(clock.Now().UnixNano())),
	}
}

// Files returns a snapshot of every tracked upload.
func (p *Pipeline) Files() []UploadedFile {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]UploadedFile, 0, len(p.files))
	for _, f := range p.files {
		out = append(out, *f)
	}
	return out
}

// Result returns the last aggregate, nil before any analysis ran.
func (p *Pipeline) Result() *Result {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.result == nil {
		return nil
	}
	r := *p.result
	return &r
}

// RemoveFile drops a tracked upload from the list; unknown ids are a no-op.
func (p *Pipeline) RemoveFile(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, f := range p.files {
		if f.ID == id {
			p.files = append(p.files[:i], p.files[i+1:]...)
			return
		}
	}
}

// Enqueue registers the files and starts processing them in order. There is
// no cancellation: once started, each file always runs to completion.
func (p *Pipeline) Enqueue(metas []FileMeta) []UploadedFile {
	p.mu.Lock()
	batch := make([]*UploadedFile, 0, len(metas))
	for _, m := range metas {
		f := &UploadedFile{
			ID:          uuid.NewString(),
			Name:        m.Name,
			Size:        m.Size,
			ContentType: m.ContentType,
			Status:      StatusQueued,
		}
		p.files = append(p.files, f)
		batch = append(batch, f)
	}
	snapshot := make([]UploadedFile, 0, len(batch))
	for _, f := range batch {
		snapshot = append(snapshot, *f)
	}
	p.mu.Unlock()

	go p.processBatch(batch)
	return snapshot
}

func (p *Pipeline) processBatch(batch []*UploadedFile) {
	for _, f := range batch {
		// Upload progress advances 0..100 in steps of 20, one tick each.
		for progress := 0; progress <= 100; progress += 20 {
			<-p.clock.After(p.timings.UploadTick)
			p.mu.Lock()
			f.Progress = progress
			if progress < 100 {
				f.Status = StatusUploading
			} else {
				f.Status = StatusProcessing
			}
			p.mu.Unlock()
		}

		<-p.clock.After(p.timings.ProcessDelay)

		report := p.mockReport()
		p.mu.Lock()
		f.Status = StatusCompleted
		f.Report = &report
		name := f.Name
		p.mu.Unlock()

		if p.notifier != nil {
			p.notifier.FileProcessed(name)
		}
	}
}

// RunAnalysis waits out the fixed analysis delay, then aggregates every
// completed file into a Result and stores it.
func (p *Pipeline) RunAnalysis() Result {
	<-p.clock.After(p.timings.AnalysisDelay)

	p.mu.Lock()
	var completed []*UploadedFile
	for _, f := range p.files {
		if f.Status == StatusCompleted {
			completed = append(completed, f)
		}
	}

	res := Result{
		FilesProcessed: len(completed),
		Trends:         aggregateTrends(),
		Sectors:        sectorShares(),
		Cities:         cityScores(),
	}
	sum := 0
	for _, f := range completed {
		res.TotalProperties += f.Report.Properties
		res.TotalValue += f.Report.TotalValue
		sum += f.Report.AvgScore
	}
	if len(completed) > 0 {
		res.AvgScore = int(math.Round(float64(sum) / float64(len(completed))))
	}
	p.result = &res
	p.mu.Unlock()

	if p.notifier != nil {
		p.notifier.AnalysisComplete(res.FilesProcessed)
	}
	return res
}

func (p *Pipeline) mockReport() FileReport {
	low := p.rng.Intn(40) + 30
	medium := p.rng.Intn(30) + 20
	trends := make([]TrendPoint, 0, 6)
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
	base := []float64{100, 102, 105, 108, 110, 112}
	for i, m := range months {
		trends = append(trends, TrendPoint{Month: m, Value: base[i] + p.rng.Float64()*10})
	}
	return FileReport{
		Properties: p.rng.Intn(20) + 5,
		TotalValue: p.rng.Intn(50) + 10,
		AvgScore:   p.rng.Intn(30) + 70,
		RiskDistribution: RiskDistribution{
			Low:    low,
			Medium: medium,
			High:   100 - low - medium,
		},
		Trends: trends,
	}
}

func aggregateTrends() []MonthlyTrend {
	return []MonthlyTrend{
		{Month: "Jan", Analyzed: 95, Verified: 88},
		{Month: "Feb", Analyzed: 98, Verified: 91},
		{Month: "Mar", Analyzed: 102, Verified: 95},
		{Month: "Apr", Analyzed: 108, Verified: 100},
		{Month: "May", Analyzed: 112, Verified: 106},
		{Month: "Jun", Analyzed: 118, Verified: 112},
	}
}

func sectorShares() []SectorShare {
	return []SectorShare{
		{Name: "Residential", Value: 35},
		{Name: "Commercial", Value: 30},
		{Name: "Industrial", Value: 20},
		{Name: "Retail", Value: 15},
	}
}

func cityScores() []CityScore {
	return []CityScore{
		{Name: "Mumbai", Score: 92, Properties: 12},
		{Name: "Bangalore", Score: 89, Properties: 8},
		{Name: "Delhi", Score: 85, Properties: 6},
		{Name: "Hyderabad", Score: 88, Properties: 5},
		{Name: "Chennai", Score: 84, Properties: 4},
	}
}
