package services

import (
	"log"
	"sync"

	"banner-service/repositories"
)

// Job names understood by the queue worker.
const (
	JobDeleteByTag     = "delete_by_tag"
	JobDeleteByFeature = "delete_by_feature"
)

// Job is one unit of deferred work. TargetID is the tag or feature id
// the job operates on.
type Job struct {
	Name     string
	TargetID uint
}

// TaskQueue runs jobs on a background worker. Submit never blocks the
// caller beyond channel capacity and never reports the job's outcome.
type TaskQueue interface {
	Start()
	Stop()
	Submit(job Job)
}

type taskQueue struct {
	bannerRepo repositories.BannerRepository
	jobs       chan Job
	wg         sync.WaitGroup
	startOnce  sync.Once
	stopOnce   sync.Once
}

func NewTaskQueue(bannerRepo repositories.BannerRepository, buffer int) TaskQueue {
	if buffer < 1 {
		buffer = 64
	}
	return &taskQueue{
		bannerRepo: bannerRepo,
		jobs:       make(chan Job, buffer),
	}
}

func (q *taskQueue) Start() {
	q.startOnce.Do(func() {
		q.wg.Add(1)
		go q.worker()
	})
}

// Stop closes the queue and waits for the worker to drain pending jobs.
func (q *taskQueue) Stop() {
	q.stopOnce.Do(func() {
		close(q.jobs)
		q.wg.Wait()
	})
}

func (q *taskQueue) Submit(job Job) {
	q.jobs <- job
}

func (q *taskQueue) worker() {
	defer q.wg.Done()
	for job := range q.jobs {
		q.run(job)
	}
}

func (q *taskQueue) run(job Job) {
	var err error
	switch job.Name {
	case JobDeleteByTag:
		err = q.bannerRepo.DeleteByTagID(job.TargetID)
	case JobDeleteByFeature:
		err = q.bannerRepo.DeleteByFeatureID(job.TargetID)
	default:
		log.Printf("task queue: unknown job %q", job.Name)
		return
	}
	if err != nil {
		log.Printf("task queue: job %s (target %d) failed: %v", job.Name, job.TargetID, err)
	}
}
