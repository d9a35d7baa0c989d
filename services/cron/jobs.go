package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/sahilchouksey/studystack-api/model"
	"github.com/sahilchouksey/studystack-api/services/uploadstore"
)

// ScanOrphanUploads reports files sitting in the upload directory that no
// content row references. Content deletion leaves the file behind, so the
// count tells operators how much disk is reclaimable.
func (m *CronManager) ScanOrphanUploads() {
	jobName := "scan_orphan_uploads"

	files, err := m.uploads.List()
	if err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to list uploads: %w", err))
		return
	}

	if len(files) == 0 {
		m.logJobComplete(jobName, "No uploaded files on disk")
		return
	}

	var urls []string
	if err := m.db.Model(&model.Content{}).
		Where("url <> ''").
		Pluck("url", &urls).Error; err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to query content urls: %w", err))
		return
	}

	referenced := make(map[string]bool, len(urls))
	for _, u := range urls {
		referenced[u] = true
	}

	orphans := 0
	for _, name := range files {
		if !referenced[uploadstore.URLFor(name)] {
			orphans++
			log.Printf("[CRON] Orphaned upload: %s", name)
		}
	}

	m.logJobComplete(jobName, fmt.Sprintf("%d of %d uploaded files are unreferenced", orphans, len(files)))
}

// ReportDanglingReferences counts child rows whose parent row no longer
// exists. Parent deletes do not cascade, so this is the only visibility into
// the resulting orphans.
func (m *CronManager) ReportDanglingReferences() {
	jobName := "report_dangling_refs"

	checks := []struct {
		label string
		query string
	}{
		{"regulations", "SELECT count(*) FROM regulations r WHERE NOT EXISTS (SELECT 1 FROM universities u WHERE u.id = r.university_id)"},
		{"branches", "SELECT count(*) FROM branches b WHERE NOT EXISTS (SELECT 1 FROM regulations r WHERE r.id = b.regulation_id)"},
		{"subjects", "SELECT count(*) FROM subjects s WHERE NOT EXISTS (SELECT 1 FROM branches b WHERE b.id = s.branch_id)"},
		{"units", "SELECT count(*) FROM units un WHERE NOT EXISTS (SELECT 1 FROM subjects s WHERE s.id = un.subject_id)"},
		{"contents", "SELECT count(*) FROM contents c WHERE NOT EXISTS (SELECT 1 FROM units un WHERE un.id = c.unit_id)"},
	}

	summary := ""
	total := int64(0)
	for _, check := range checks {
		var count int64
		if err := m.db.Raw(check.query).Scan(&count).Error; err != nil {
			m.logJobError(jobName, fmt.Errorf("failed to count dangling %s: %w", check.label, err))
			return
		}
		if count > 0 {
			log.Printf("[CRON] %d %s reference a deleted parent", count, check.label)
		}
		summary += fmt.Sprintf("%s=%d ", check.label, count)
		total += count
	}

	m.logJobComplete(jobName, fmt.Sprintf("%d dangling rows (%s)", total, summary))
}

// CleanupJobLogs removes cron job logs older than 30 days
func (m *CronManager) CleanupJobLogs() {
	jobName := "cleanup_job_logs"
	cutoff := time.Now().AddDate(0, 0, -30)

	result := m.db.Where("started_at < ? AND status <> ?", cutoff, "running").
		Delete(&model.CronJobLog{})
	if result.Error != nil {
		m.logJobError(jobName, result.Error)
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("Removed %d old job logs", result.RowsAffected))
}
