package handlers_test

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestApplyLeaveRejectsInvertedRange(t *testing.T) {
	router, _ := newTestServer(t)

	token, _ := registerAndLogin(t, router, "a@co.com", "secret1", "Alice", "")

	w := doJSON(t, router, "POST", "/api/ems/leaves", token, gin.H{
		"reason":     "vacation",
		"start_date": "2025-06-03",
		"end_date":   "2025-06-01",
	})
	if w.Code != 400 {
		t.Fatalf("expected 400, got %d %s", w.Code, w.Body.String())
	}
}

func TestApplyLeaveForcesPendingStatus(t *testing.T) {
	router, _ := newTestServer(t)

	token, _ := registerAndLogin(t, router, "a@co.com", "secret1", "Alice", "")

	w := doJSON(t, router, "POST", "/api/ems/leaves", token, gin.H{
		"reason":     "vacation",
		"start_date": "2025-06-01",
		"end_date":   "2025-06-03",
		"status":     "approved",
	})
	if w.Code != 201 {
		t.Fatalf("apply failed: %d %s", w.Code, w.Body.String())
	}
	if body := decodeBody(t, w); body["status"] != "pending" {
		t.Fatalf("expected forced pending, got %v", body["status"])
	}

	own := decodeList(t, doJSON(t, router, "GET", "/api/ems/leaves", token, nil))
	if len(own) != 1 {
		t.Fatalf("expected 1 own leave, got %d", len(own))
	}
}

func TestUpdateLeaveStatus(t *testing.T) {
	router, _ := newTestServer(t)

	managerToken, _ := registerAndLogin(t, router, "boss@co.com", "secret1", "Boss", "manager")
	employeeToken, _ := registerAndLogin(t, router, "a@co.com", "secret1", "Alice", "")

	w := doJSON(t, router, "POST", "/api/ems/leaves", employeeToken, gin.H{
		"reason":     "vacation",
		"start_date": "2025-06-01",
		"end_date":   "2025-06-03",
	})
	leaveID := decodeBody(t, w)["id"].(string)

	if w := doJSON(t, router, "PUT", "/api/ems/leaves/"+leaveID, employeeToken, gin.H{"status": "approved"}); w.Code != 403 {
		t.Fatalf("expected 403 for employee, got %d", w.Code)
	}

	if w := doJSON(t, router, "PUT", "/api/ems/leaves/"+leaveID, managerToken, gin.H{"status": "sideways"}); w.Code != 400 {
		t.Fatalf("expected 400 for invalid status, got %d", w.Code)
	}

	if w := doJSON(t, router, "PUT", "/api/ems/leaves/"+uuid.NewString(), managerToken, gin.H{"status": "approved"}); w.Code != 404 {
		t.Fatalf("expected 404 for unknown leave, got %d", w.Code)
	}

	// The existence lookup runs first: an unknown leave is 404 even when
	// the payload status is also invalid.
	if w := doJSON(t, router, "PUT", "/api/ems/leaves/"+uuid.NewString(), managerToken, gin.H{"status": "sideways"}); w.Code != 404 {
		t.Fatalf("expected 404 for unknown leave with bad status, got %d", w.Code)
	}

	approve := doJSON(t, router, "PUT", "/api/ems/leaves/"+leaveID, managerToken, gin.H{"status": "approved"})
	if approve.Code != 200 || decodeBody(t, approve)["status"] != "approved" {
		t.Fatalf("approve failed: %d %s", approve.Code, approve.Body.String())
	}

	// No transition order: a rejected leave can be re-approved.
	reject := doJSON(t, router, "PUT", "/api/ems/leaves/"+leaveID, managerToken, gin.H{"status": "rejected"})
	if reject.Code != 200 {
		t.Fatalf("reject failed: %d", reject.Code)
	}
	reapprove := doJSON(t, router, "PUT", "/api/ems/leaves/"+leaveID, managerToken, gin.H{"status": "approved"})
	if reapprove.Code != 200 || decodeBody(t, reapprove)["status"] != "approved" {
		t.Fatalf("re-approve failed: %d", reapprove.Code)
	}
}

func TestAdminCreateLeave(t *testing.T) {
	router, _ := newTestServer(t)

	adminToken, _ := registerAndLogin(t, router, "admin@co.com", "admin123", "Admin", "admin")
	_, created := registerAndLogin(t, router, "a@co.com", "secret1", "Alice", "")

	unknown := doJSON(t, router, "POST", "/api/ems/admin/leaves", adminToken, gin.H{
		"employee_id": uuid.NewString(),
		"reason":      "conference",
		"start_date":  "2025-06-01",
		"end_date":    "2025-06-02",
	})
	if unknown.Code != 404 {
		t.Fatalf("expected 404 for unknown employee, got %d", unknown.Code)
	}

	badStatus := doJSON(t, router, "POST", "/api/ems/admin/leaves", adminToken, gin.H{
		"employee_id": created["id"],
		"reason":      "conference",
		"start_date":  "2025-06-01",
		"end_date":    "2025-06-02",
		"status":      "maybe",
	})
	if badStatus.Code != 400 {
		t.Fatalf("expected 400 for invalid status, got %d", badStatus.Code)
	}

	inverted := doJSON(t, router, "POST", "/api/ems/admin/leaves", adminToken, gin.H{
		"employee_id": created["id"],
		"reason":      "conference",
		"start_date":  "2025-06-05",
		"end_date":    "2025-06-01",
	})
	if inverted.Code != 400 {
		t.Fatalf("expected 400 for inverted range, got %d", inverted.Code)
	}

	ok := doJSON(t, router, "POST", "/api/ems/admin/leaves", adminToken, gin.H{
		"employee_id": created["id"],
		"reason":      "conference",
		"start_date":  "2025-06-01",
		"end_date":    "2025-06-02",
		"status":      "rejected",
	})
	if ok.Code != 201 {
		t.Fatalf("admin create failed: %d %s", ok.Code, ok.Body.String())
	}
	if body := decodeBody(t, ok); body["status"] != "rejected" {
		t.Fatalf("expected caller-supplied status rejected, got %v", body["status"])
	}
}

func TestListAllLeavesRequiresRole(t *testing.T) {
	router, _ := newTestServer(t)

	managerToken, _ := registerAndLogin(t, router, "boss@co.com", "secret1", "Boss", "manager")
	employeeToken, _ := registerAndLogin(t, router, "a@co.com", "secret1", "Alice", "")

	w := doJSON(t, router, "POST", "/api/ems/leaves", employeeToken, gin.H{
		"reason":     "vacation",
		"start_date": "2025-06-01",
		"end_date":   "2025-06-03",
	})
	if w.Code != 201 {
		t.Fatalf("apply failed: %d", w.Code)
	}

	if w := doJSON(t, router, "GET", "/api/ems/leaves/all", employeeToken, nil); w.Code != 403 {
		t.Fatalf("expected 403 for employee, got %d", w.Code)
	}

	all := doJSON(t, router, "GET", "/api/ems/leaves/all", managerToken, nil)
	if all.Code != 200 {
		t.Fatalf("list all failed: %d", all.Code)
	}
	rows := decodeList(t, all)
	if len(rows) != 1 || rows[0]["employee"] != "Alice" {
		t.Fatalf("unexpected rows: %v", rows)
	}
}
