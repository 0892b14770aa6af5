package controllers

import (
	"log"

	"worldone/database"
	"worldone/supabase"

	"github.com/gofiber/fiber/v2"
)

// Analytics endpoints read precomputed views and reshape them for the
// dashboards. Any read failure degrades to a zeroed payload with HTTP 200:
// a dashboard that renders zeros beats one that errors out.

func zeroOverview() fiber.Map {
	return fiber.Map{
		"total_students":    0,
		"total_courses":     0,
		"total_enrollments": 0,
		"total_revenue":     0,
	}
}

func AdminAnalytics(c *fiber.Ctx) error {
	payload := fiber.Map{
		"overview":    zeroOverview(),
		"top_courses": []supabase.Record{},
	}

	db := database.Client()
	if db == nil {
		log.Println("Error reading admin analytics: database connection not configured")
		return c.JSON(payload)
	}

	if res, err := db.Table("view_admin_stats").Select("*").Single().Execute(); err != nil {
		log.Printf("Error reading view_admin_stats: %v", err)
	} else if row := res.First(); row != nil {
		payload["overview"] = row
	}

	if res, err := db.Table("view_course_performance").
		Select("*").
		Order("enrollment_count", true).
		Execute(); err != nil {
		log.Printf("Error reading view_course_performance: %v", err)
	} else {
		payload["top_courses"] = res.Rows
	}

	return c.JSON(payload)
}

func StudentAnalytics(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	payload := fiber.Map{
		"user_id": userID,
		"courses": []supabase.Record{},
		"summary": fiber.Map{
			"enrolled_courses":  0,
			"completed_lessons": 0,
			"average_score":     0,
		},
	}

	db := database.Client()
	if db == nil {
		log.Println("Error reading student analytics: database connection not configured")
		return c.JSON(payload)
	}

	res, err := db.Table("view_student_progress").
		Select("*").
		Eq("user_id", userID).
		Order("course_title", false).
		Execute()
	if err != nil {
		log.Printf("Error reading view_student_progress for user %s: %v", userID, err)
		return c.JSON(payload)
	}

	completedLessons := 0
	var scoreSum float64
	scored := 0
	for _, row := range res.Rows {
		completedLessons += row.Int("completed_lessons")
		if _, ok := row["average_score"]; ok {
			scoreSum += row.Float("average_score")
			scored++
		}
	}
	averageScore := 0
	if scored > 0 {
		averageScore = int(scoreSum / float64(scored))
	}

	payload["courses"] = res.Rows
	payload["summary"] = fiber.Map{
		"enrolled_courses":  len(res.Rows),
		"completed_lessons": completedLessons,
		"average_score":     averageScore,
	}
	return c.JSON(payload)
}
