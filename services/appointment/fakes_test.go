package appointment

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"ziaclinic/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// memoryRepo is an in-memory AppointmentRepository.
type memoryRepo struct {
	mu      sync.Mutex
	seq     int
	records map[string]models.Appointment
	clock   time.Time

	countErr error
	counts   int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		records: map[string]models.Appointment{},
		clock:   time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *memoryRepo) Create(_ context.Context, appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.clock = r.clock.Add(time.Second)
	appt.ID = fmt.Sprintf("appt-%d", r.seq)
	appt.CreatedAt, appt.UpdatedAt = r.clock, r.clock
	r.records[appt.ID] = *appt
	return nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt, ok := r.records[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &appt, nil
}

func (r *memoryRepo) GetAll(context.Context) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Appointment, 0, len(r.records))
	for _, a := range r.records {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memoryRepo) GetByDate(_ context.Context, date string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Appointment, 0)
	for _, a := range r.records {
		if a.PreferredDate == date {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SlotStart.Before(out[j].SlotStart) })
	return out, nil
}

func (r *memoryRepo) CountByDate(_ context.Context, date string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts++
	if r.countErr != nil {
		return 0, r.countErr
	}
	var n int64
	for _, a := range r.records {
		if a.PreferredDate == date {
			n++
		}
	}
	return n, nil
}

func (r *memoryRepo) UpdateSetDocument(_ context.Context, id string, fields bson.M) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt, ok := r.records[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	for k, v := range fields {
		switch k {
		case "name":
			appt.Name = v.(string)
		case "phone":
			appt.Phone = v.(string)
		case "preferredDate":
			appt.PreferredDate = v.(string)
		case "concern":
			appt.Concern = v.(string)
		case "plan":
			appt.Plan = v.(*models.Plan)
		case "status":
			appt.Status = v.(models.AppointmentStatus)
		default:
			return nil, fmt.Errorf("unexpected field %q", k)
		}
	}
	r.clock = r.clock.Add(time.Second)
	appt.UpdatedAt = r.clock
	r.records[id] = appt
	return &appt, nil
}

func (r *memoryRepo) Delete(_ context.Context, id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt, ok := r.records[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	delete(r.records, id)
	return &appt, nil
}

func (r *memoryRepo) EnsureIndexes(context.Context) error { return nil }

// recordingLocker counts lock and release calls.
type recordingLocker struct {
	mu       sync.Mutex
	locked   []string
	released int
	err      error
}

func (l *recordingLocker) Lock(_ context.Context, dateKey string) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return nil, l.err
	}
	l.locked = append(l.locked, dateKey)
	return func() {
		l.mu.Lock()
		l.released++
		l.mu.Unlock()
	}, nil
}
