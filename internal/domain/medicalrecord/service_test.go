package medicalrecord

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -- Mock Repository --

type grant struct {
	recordID, doctorID int64
}

type mockRepo struct {
	records    map[int64]*Record
	grants     []grant
	diagnoses  map[int64]*Diagnosis
	nextRecID  int64
	nextDiagID int64
	failGrant  bool
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		records:    make(map[int64]*Record),
		diagnoses:  make(map[int64]*Diagnosis),
		nextRecID:  1,
		nextDiagID: 1,
	}
}

func (m *mockRepo) CreateRecord(_ context.Context, r *Record) error {
	r.ID = m.nextRecID
	m.nextRecID++
	r.CreatedAt = time.Now()
	m.records[r.ID] = r
	return nil
}

func (m *mockRepo) GrantAccess(_ context.Context, recordID, doctorID int64) error {
	if m.failGrant {
		return errors.New("grant failed")
	}
	// Repeated grants are no-ops, mirroring the ON CONFLICT DO NOTHING insert.
	for _, g := range m.grants {
		if g.recordID == recordID && g.doctorID == doctorID {
			return nil
		}
	}
	m.grants = append(m.grants, grant{recordID: recordID, doctorID: doctorID})
	return nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID int64) ([]*RecordView, error) {
	var views []*RecordView
	for _, r := range m.records {
		if r.PatientID != patientID {
			continue
		}
		view := &RecordView{
			ID:          r.ID,
			ImageURL:    r.ImageURL,
			Description: r.Description,
			CreatedAt:   r.CreatedAt.Format(timestampLayout),
			Doctors:     []DoctorRef{},
			Diagnoses:   []DiagnosisView{},
		}
		for _, g := range m.grants {
			if g.recordID == r.ID {
				view.Doctors = append(view.Doctors, DoctorRef{ID: g.doctorID})
			}
		}
		for _, d := range m.diagnoses {
			if d.RecordID == r.ID {
				view.Diagnoses = append(view.Diagnoses, DiagnosisView{
					ID:        d.ID,
					Diagnosis: d.Diagnosis,
					Doctor:    DoctorRef{ID: d.DoctorID},
					CreatedAt: d.CreatedAt.Format(timestampLayout),
				})
			}
		}
		views = append(views, view)
	}
	return views, nil
}

func (m *mockRepo) CreateDiagnosis(_ context.Context, d *Diagnosis) error {
	d.ID = m.nextDiagID
	m.nextDiagID++
	d.CreatedAt = time.Now()
	m.diagnoses[d.ID] = d
	return nil
}

func newTestService() (*Service, *mockRepo) {
	repo := newMockRepo()
	svc := NewService(repo, func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	})
	return svc, repo
}

// -- Tests --

func TestAddRecord(t *testing.T) {
	svc, repo := newTestService()

	id, err := svc.Add(context.Background(), 1, "https://img.example.com/scan.png", "X-ray", []int64{1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.records[id] == nil {
		t.Fatal("record not persisted")
	}
	if len(repo.grants) != 2 {
		t.Fatalf("expected 2 access grants, got %d", len(repo.grants))
	}
	if repo.grants[0].doctorID != 1 || repo.grants[1].doctorID != 2 {
		t.Errorf("unexpected grants: %v", repo.grants)
	}
}

func TestAddRecord_DuplicateDoctorIDs(t *testing.T) {
	svc, repo := newTestService()

	// The same doctor listed twice must not abort the upload.
	id, err := svc.Add(context.Background(), 1, "https://img.example.com/scan.png", "X-ray", []int64{4, 4, 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.records[id] == nil {
		t.Fatal("record not persisted")
	}
	if len(repo.grants) != 2 {
		t.Fatalf("expected 2 distinct grants, got %d", len(repo.grants))
	}
	if repo.grants[0].doctorID != 4 || repo.grants[1].doctorID != 7 {
		t.Errorf("unexpected grants: %v", repo.grants)
	}
}

func TestAddRecord_NoDoctors(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Add(context.Background(), 1, "https://img.example.com/scan.png", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.grants) != 0 {
		t.Errorf("expected no grants, got %d", len(repo.grants))
	}
}

func TestAddRecord_MissingFields(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Add(context.Background(), 0, "url", "", nil); !errors.Is(err, ErrMissingFields) {
		t.Errorf("expected ErrMissingFields, got %v", err)
	}
	if _, err := svc.Add(context.Background(), 1, "", "", nil); !errors.Is(err, ErrMissingFields) {
		t.Errorf("expected ErrMissingFields, got %v", err)
	}
}

func TestListRecords(t *testing.T) {
	svc, _ := newTestService()

	id, err := svc.Add(context.Background(), 1, "https://img.example.com/scan.png", "MRI", []int64{3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.AddDiagnosis(context.Background(), id, 3, "All clear"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	views, err := svc.ListByPatient(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 record, got %d", len(views))
	}
	if len(views[0].Doctors) != 1 || views[0].Doctors[0].ID != 3 {
		t.Errorf("unexpected doctors: %v", views[0].Doctors)
	}
	if len(views[0].Diagnoses) != 1 || views[0].Diagnoses[0].Diagnosis != "All clear" {
		t.Errorf("unexpected diagnoses: %v", views[0].Diagnoses)
	}
}

func TestAddDiagnosis(t *testing.T) {
	svc, repo := newTestService()

	id, err := svc.AddDiagnosis(context.Background(), 1, 2, "Mild sprain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := repo.diagnoses[id]
	if d == nil {
		t.Fatal("diagnosis not persisted")
	}
	if d.RecordID != 1 || d.DoctorID != 2 {
		t.Errorf("unexpected diagnosis row: %+v", d)
	}
}

func TestAddDiagnosis_MissingFields(t *testing.T) {
	svc, _ := newTestService()

	cases := []struct {
		name               string
		recordID, doctorID int64
		text               string
	}{
		{"no record", 0, 2, "text"},
		{"no doctor", 1, 0, "text"},
		{"no text", 1, 2, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddDiagnosis(context.Background(), tc.recordID, tc.doctorID, tc.text)
			if !errors.Is(err, ErrMissingFields) {
				t.Errorf("expected ErrMissingFields, got %v", err)
			}
		})
	}
}
