package complaint_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Mohd-obaidullah/complaint-box/internal/complaint"
	"github.com/Mohd-obaidullah/complaint-box/internal/models"
	"github.com/Mohd-obaidullah/complaint-box/internal/storage"
)

func uintPtr(v uint) *uint { return &v }

// TestSubmitRoutesToCollege verifies that a new complaint starts Pending,
// is bound to the student's college and notifies that college.
func TestSubmitRoutesToCollege(t *testing.T) {
	store := new(MockStorage)
	notifier := new(MockNotifier)
	store.On("GetStudentByID", uint(42)).Return(&models.Student{
		ID: 42, Name: "Asha", CollegeCode: "AB23CD",
	}, nil)
	store.On("GetCollegeByCode", "AB23CD").Return(&models.College{
		ID: 7, Name: "City College", CollegeCode: "AB23CD",
	}, nil)
	store.On("CreateComplaint", mock.AnythingOfType("*models.Complaint")).Return(nil)
	notifier.On("Notify", models.RoleCollege, uint(7), "New complaint submitted: Broken fan").Return(nil)
	svc := complaint.NewService(store, notifier)

	c, err := svc.Submit(42, "Broken fan", "Fan in room 12 is dead.", "")

	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, c.Status)
	assert.Equal(t, uint(42), c.StudentID)
	assert.Equal(t, uintPtr(7), c.CollegeID)
	notifier.AssertExpectations(t)
}

// TestSubmitWithoutCollege verifies that a student with no college binding
// cannot submit.
func TestSubmitWithoutCollege(t *testing.T) {
	store := new(MockStorage)
	store.On("GetStudentByID", uint(42)).Return(&models.Student{ID: 42}, nil)
	svc := complaint.NewService(store, new(MockNotifier))

	_, err := svc.Submit(42, "Broken fan", "desc", "")
	assert.ErrorIs(t, err, complaint.ErrNoCollege)
	store.AssertNotCalled(t, "CreateComplaint", mock.Anything)
}

// TestSubmitDanglingCollegeCode verifies that a stored code with no
// matching college is treated the same as no college.
func TestSubmitDanglingCollegeCode(t *testing.T) {
	store := new(MockStorage)
	store.On("GetStudentByID", uint(42)).Return(&models.Student{ID: 42, CollegeCode: "ZZZZZZ"}, nil)
	store.On("GetCollegeByCode", "ZZZZZZ").Return(nil, storage.ErrNotFound)
	svc := complaint.NewService(store, new(MockNotifier))

	_, err := svc.Submit(42, "Broken fan", "desc", "")
	assert.ErrorIs(t, err, complaint.ErrNoCollege)
}

// TestSubmitSurvivesNotifyFailure verifies that a notification failure
// after the insert does not fail the submission.
func TestSubmitSurvivesNotifyFailure(t *testing.T) {
	store := new(MockStorage)
	notifier := new(MockNotifier)
	store.On("GetStudentByID", uint(42)).Return(&models.Student{ID: 42, CollegeCode: "AB23CD"}, nil)
	store.On("GetCollegeByCode", "AB23CD").Return(&models.College{ID: 7, CollegeCode: "AB23CD"}, nil)
	store.On("CreateComplaint", mock.AnythingOfType("*models.Complaint")).Return(nil)
	notifier.On("Notify", models.RoleCollege, uint(7), mock.AnythingOfType("string")).
		Return(errors.New("redis down"))
	svc := complaint.NewService(store, notifier)

	_, err := svc.Submit(42, "Broken fan", "desc", "")
	assert.NoError(t, err)
}

// TestAssignNotifiesStaff verifies the happy path of a college assigning
// one of its own staff: the assignment forces the status to In Progress.
func TestAssignNotifiesStaff(t *testing.T) {
	store := new(MockStorage)
	notifier := new(MockNotifier)
	store.On("GetComplaintByID", uint(3)).Return(&models.Complaint{
		ID: 3, Title: "Broken fan", CollegeID: uintPtr(7), StudentID: 42,
	}, nil)
	store.On("GetStaffByID", uint(9)).Return(&models.Staff{ID: 9, CollegeID: uintPtr(7)}, nil)
	store.On("AssignComplaint", uint(3), uint(9), models.StatusInProgress).Return(nil)
	notifier.On("Notify", models.RoleStaff, uint(9), "You have been assigned a complaint: Broken fan").Return(nil)
	svc := complaint.NewService(store, notifier)

	assert.NoError(t, svc.Assign(7, 3, 9))
	store.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

// TestAssignOverwritesPriorState verifies that re-assignment replaces the
// assignee and drags the status back to In Progress regardless of its
// prior value.
func TestAssignOverwritesPriorState(t *testing.T) {
	store := new(MockStorage)
	notifier := new(MockNotifier)
	store.On("GetComplaintByID", uint(3)).Return(&models.Complaint{
		ID: 3, Title: "Broken fan", CollegeID: uintPtr(7), StudentID: 42,
		StaffID: uintPtr(9), Status: models.StatusResolved,
	}, nil)
	store.On("GetStaffByID", uint(10)).Return(&models.Staff{ID: 10, CollegeID: uintPtr(7)}, nil)
	store.On("AssignComplaint", uint(3), uint(10), models.StatusInProgress).Return(nil)
	notifier.On("Notify", models.RoleStaff, uint(10), "You have been assigned a complaint: Broken fan").Return(nil)
	svc := complaint.NewService(store, notifier)

	assert.NoError(t, svc.Assign(7, 3, 10))
	store.AssertExpectations(t)
}

// TestAssignWrongCollege verifies that a college cannot assign complaints
// routed to another college.
func TestAssignWrongCollege(t *testing.T) {
	store := new(MockStorage)
	store.On("GetComplaintByID", uint(3)).Return(&models.Complaint{ID: 3, CollegeID: uintPtr(8)}, nil)
	svc := complaint.NewService(store, new(MockNotifier))

	assert.ErrorIs(t, svc.Assign(7, 3, 9), complaint.ErrUnauthorized)
	store.AssertNotCalled(t, "AssignComplaint", mock.Anything, mock.Anything, mock.Anything)
}

// TestAssignForeignStaff verifies that staff bound to a different college
// cannot be assigned.
func TestAssignForeignStaff(t *testing.T) {
	store := new(MockStorage)
	store.On("GetComplaintByID", uint(3)).Return(&models.Complaint{ID: 3, CollegeID: uintPtr(7)}, nil)
	store.On("GetStaffByID", uint(9)).Return(&models.Staff{ID: 9, CollegeID: uintPtr(8)}, nil)
	svc := complaint.NewService(store, new(MockNotifier))

	assert.ErrorIs(t, svc.Assign(7, 3, 9), complaint.ErrUnauthorized)
}

// TestAssignUnknownStaff verifies that a missing staff id fails without
// touching the complaint.
func TestAssignUnknownStaff(t *testing.T) {
	store := new(MockStorage)
	store.On("GetComplaintByID", uint(3)).Return(&models.Complaint{ID: 3, CollegeID: uintPtr(7)}, nil)
	store.On("GetStaffByID", uint(9)).Return(nil, storage.ErrNotFound)
	svc := complaint.NewService(store, new(MockNotifier))

	assert.ErrorIs(t, svc.Assign(7, 3, 9), complaint.ErrNotFound)
	store.AssertNotCalled(t, "AssignComplaint", mock.Anything, mock.Anything, mock.Anything)
}

// TestUpdateStatusByAssignee verifies that the assigned staff member can
// move the complaint and the student is notified.
func TestUpdateStatusByAssignee(t *testing.T) {
	store := new(MockStorage)
	notifier := new(MockNotifier)
	store.On("GetComplaintByID", uint(3)).Return(&models.Complaint{
		ID: 3, Title: "Broken fan", StaffID: uintPtr(9), StudentID: 42,
	}, nil)
	store.On("UpdateComplaintStatus", uint(3), models.StatusResolved).Return(nil)
	notifier.On("Notify", models.RoleStudent, uint(42),
		`Your complaint "Broken fan" status changed to Resolved`).Return(nil)
	svc := complaint.NewService(store, notifier)

	assert.NoError(t, svc.UpdateStatus(9, 3, "Resolved"))
	notifier.AssertExpectations(t)
}

// TestUpdateStatusByOtherStaff verifies strict ownership: only the
// assignee may update, even staff from the same college cannot.
func TestUpdateStatusByOtherStaff(t *testing.T) {
	store := new(MockStorage)
	store.On("GetComplaintByID", uint(3)).Return(&models.Complaint{ID: 3, StaffID: uintPtr(9)}, nil)
	svc := complaint.NewService(store, new(MockNotifier))

	assert.ErrorIs(t, svc.UpdateStatus(10, 3, "Resolved"), complaint.ErrUnauthorized)
	store.AssertNotCalled(t, "UpdateComplaintStatus", mock.Anything, mock.Anything)
}

// TestUpdateStatusUnassigned verifies that an unassigned complaint cannot
// be status-updated.
func TestUpdateStatusUnassigned(t *testing.T) {
	store := new(MockStorage)
	store.On("GetComplaintByID", uint(3)).Return(&models.Complaint{ID: 3}, nil)
	svc := complaint.NewService(store, new(MockNotifier))

	assert.ErrorIs(t, svc.UpdateStatus(9, 3, "Resolved"), complaint.ErrUnauthorized)
}

// TestUpdateStatusRejectsBadValues verifies the closed status set; Pending
// is reserved for fresh complaints.
func TestUpdateStatusRejectsBadValues(t *testing.T) {
	svc := complaint.NewService(new(MockStorage), new(MockNotifier))

	for _, raw := range []string{"Pending", "resolved", "Done", ""} {
		assert.ErrorIs(t, svc.UpdateStatus(9, 3, raw), complaint.ErrInvalidStatus, "status %q", raw)
	}
}

// TestListForCollegeScopedByCode verifies the code-scoped listing with
// student names resolved.
func TestListForCollegeScopedByCode(t *testing.T) {
	store := new(MockStorage)
	store.On("GetCollegeByID", uint(7)).Return(&models.College{ID: 7, CollegeCode: "AB23CD"}, nil)
	store.On("ListComplaintsByCollegeCode", "AB23CD").Return([]models.Complaint{
		{ID: 3, Title: "Broken fan", StudentID: 42},
	}, nil)
	store.On("GetStudentByID", uint(42)).Return(&models.Student{ID: 42, Name: "Asha"}, nil)
	svc := complaint.NewService(store, new(MockNotifier))

	details, err := svc.ListForCollege(7)
	assert.NoError(t, err)
	assert.Len(t, details, 1)
	assert.Equal(t, "Asha", details[0].StudentName)
	store.AssertNotCalled(t, "ListAllComplaints")
}

// TestListForCollegeWithoutCode verifies the fallback for college rows
// predating code issuance.
func TestListForCollegeWithoutCode(t *testing.T) {
	store := new(MockStorage)
	store.On("GetCollegeByID", uint(7)).Return(&models.College{ID: 7}, nil)
	store.On("ListAllComplaints").Return([]models.Complaint{{ID: 3, StudentID: 42}}, nil)
	store.On("GetStudentByID", uint(42)).Return(nil, storage.ErrNotFound)
	svc := complaint.NewService(store, new(MockNotifier))

	details, err := svc.ListForCollege(7)
	assert.NoError(t, err)
	assert.Len(t, details, 1)
	assert.Equal(t, "Unknown", details[0].StudentName)
}
