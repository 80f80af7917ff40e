package appointmentRepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"ziaclinic/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const ns = "ziaclinic.appointments"

func toDoc(t *testing.T, v interface{}) bson.D {
	t.Helper()
	raw, err := bson.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return doc
}

func sampleAppointment(id string, number int) models.Appointment {
	start := time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC).Add(time.Duration(number-1) * 15 * time.Minute)
	return models.Appointment{
		ID:            id,
		Name:          "Ayesha",
		Phone:         "0300-1234567",
		PreferredDate: "2025-03-10",
		PatientNumber: number,
		SlotStart:     start,
		SlotEnd:       start.Add(15 * time.Minute),
		Status:        models.AppointmentPending,
		CreatedAt:     start.Add(-time.Hour),
		UpdatedAt:     start.Add(-time.Hour),
	}
}

func TestCreate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns id and timestamps", func(mt *mtest.T) {
		repo := NewMongoAppointmentRepo(mt.DB, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		appt := sampleAppointment("", 1)
		appt.CreatedAt, appt.UpdatedAt = time.Time{}, time.Time{}
		if err := repo.Create(context.Background(), &appt); err != nil {
			mt.Fatalf("Create returned error: %v", err)
		}
		if appt.ID == "" {
			mt.Error("expected an id to be assigned")
		}
		if appt.CreatedAt.IsZero() || !appt.CreatedAt.Equal(appt.UpdatedAt) {
			mt.Errorf("expected matching non-zero timestamps, got %v / %v", appt.CreatedAt, appt.UpdatedAt)
		}
	})

	mt.Run("duplicate key surfaces", func(mt *mtest.T) {
		repo := NewMongoAppointmentRepo(mt.DB, time.Second)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		appt := sampleAppointment("a-1", 1)
		err := repo.Create(context.Background(), &appt)
		if !mongo.IsDuplicateKeyError(err) {
			mt.Fatalf("expected duplicate key error, got %v", err)
		}
	})
}

func TestGetByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := NewMongoAppointmentRepo(mt.DB, time.Second)
		want := sampleAppointment("a-1", 3)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, toDoc(mt.T, want)))

		got, err := repo.GetByID(context.Background(), "a-1")
		if err != nil {
			mt.Fatalf("GetByID returned error: %v", err)
		}
		if got.ID != want.ID || got.PatientNumber != 3 || !got.SlotStart.Equal(want.SlotStart) {
			mt.Errorf("unexpected appointment: %+v", got)
		}
	})

	mt.Run("missing", func(mt *mtest.T) {
		repo := NewMongoAppointmentRepo(mt.DB, time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.GetByID(context.Background(), "nope")
		if !errors.Is(err, mongo.ErrNoDocuments) {
			mt.Fatalf("expected ErrNoDocuments, got %v", err)
		}
	})
}

func TestListQueries(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("by date keeps server order", func(mt *mtest.T) {
		repo := NewMongoAppointmentRepo(mt.DB, time.Second)
		first, second := sampleAppointment("a-1", 1), sampleAppointment("a-2", 2)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, toDoc(mt.T, first), toDoc(mt.T, second)),
		)

		got, err := repo.GetByDate(context.Background(), "2025-03-10")
		if err != nil {
			mt.Fatalf("GetByDate returned error: %v", err)
		}
		if len(got) != 2 || got[0].PatientNumber != 1 || got[1].PatientNumber != 2 {
			mt.Errorf("unexpected result: %+v", got)
		}
	})

	mt.Run("empty list is not nil", func(mt *mtest.T) {
		repo := NewMongoAppointmentRepo(mt.DB, time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		got, err := repo.GetAll(context.Background())
		if err != nil {
			mt.Fatalf("GetAll returned error: %v", err)
		}
		if got == nil || len(got) != 0 {
			mt.Errorf("expected empty non-nil slice, got %#v", got)
		}
	})

	mt.Run("count by date", func(mt *mtest.T) {
		repo := NewMongoAppointmentRepo(mt.DB, time.Second)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: 1}, {Key: "n", Value: int32(7)}},
		))

		n, err := repo.CountByDate(context.Background(), "2025-03-10")
		if err != nil {
			mt.Fatalf("CountByDate returned error: %v", err)
		}
		if n != 7 {
			mt.Errorf("expected 7, got %d", n)
		}
	})
}

func TestUpdateAndDelete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("update returns new document", func(mt *mtest.T) {
		repo := NewMongoAppointmentRepo(mt.DB, time.Second)
		updated := sampleAppointment("a-1", 1)
		updated.Status = models.AppointmentConfirmed
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: toDoc(mt.T, updated)}))

		got, err := repo.UpdateSetDocument(context.Background(), "a-1", bson.M{"status": "confirmed"})
		if err != nil {
			mt.Fatalf("UpdateSetDocument returned error: %v", err)
		}
		if got.Status != models.AppointmentConfirmed {
			mt.Errorf("expected confirmed, got %q", got.Status)
		}
	})

	mt.Run("update of missing id", func(mt *mtest.T) {
		repo := NewMongoAppointmentRepo(mt.DB, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.UpdateSetDocument(context.Background(), "nope", bson.M{"name": "x"})
		if !errors.Is(err, mongo.ErrNoDocuments) {
			mt.Fatalf("expected ErrNoDocuments, got %v", err)
		}
	})

	mt.Run("delete returns removed document", func(mt *mtest.T) {
		repo := NewMongoAppointmentRepo(mt.DB, time.Second)
		removed := sampleAppointment("a-9", 9)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: toDoc(mt.T, removed)}))

		got, err := repo.Delete(context.Background(), "a-9")
		if err != nil {
			mt.Fatalf("Delete returned error: %v", err)
		}
		if got.ID != "a-9" || got.PatientNumber != 9 {
			mt.Errorf("unexpected deleted record: %+v", got)
		}
	})

	mt.Run("ensure indexes", func(mt *mtest.T) {
		repo := NewMongoAppointmentRepo(mt.DB, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		if err := repo.EnsureIndexes(context.Background()); err != nil {
			mt.Fatalf("EnsureIndexes returned error: %v", err)
		}
	})
}
