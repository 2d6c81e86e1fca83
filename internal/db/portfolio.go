package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jonathan/portfolio-terminal/internal/types"
	"golang.org/x/sync/errgroup"
)

// -----------------------------------------------------------------------------
// Loading
// -----------------------------------------------------------------------------

// LoadPortfolio reads every section concurrently. List sections come back in
// position order.
func (db *DB) LoadPortfolio(ctx context.Context) (types.Portfolio, error) {
	var p types.Portfolio

	// Each goroutine owns exactly one field of p.
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		p.Contact, err = db.loadContact(gCtx)
		return err
	})
	g.Go(func() (err error) {
		p.Experience, err = db.loadExperience(gCtx)
		return err
	})
	g.Go(func() (err error) {
		p.Certifications, err = db.loadCertifications(gCtx)
		return err
	})
	g.Go(func() (err error) {
		p.Projects, err = db.loadProjects(gCtx)
		return err
	})
	g.Go(func() (err error) {
		p.Skills, err = db.loadSkills(gCtx)
		return err
	})
	g.Go(func() (err error) {
		p.Education, err = db.loadEducation(gCtx)
		return err
	})
	g.Go(func() (err error) {
		p.Rank, err = db.loadRank(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return types.Portfolio{}, err
	}
	return p, nil
}

func (db *DB) loadContact(ctx context.Context) (types.ContactProfile, error) {
	var c types.ContactProfile
	err := db.pool.QueryRow(ctx,
		`SELECT name, objective, email, phone, location, linkedin_url, github_url, trailhead_url
		 FROM contact_profile WHERE id = 1`,
	).Scan(&c.Name, &c.Objective, &c.Email, &c.Phone, &c.Location,
		&c.Links.LinkedIn, &c.Links.GitHub, &c.Links.Trailhead)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c, &MissingRecordError{Table: "contact_profile"}
		}
		return c, fmt.Errorf("failed to load contact: %w", err)
	}
	return c, nil
}

func (db *DB) loadExperience(ctx context.Context) ([]types.WorkEntry, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT company, role, period, category FROM work_entries ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to load experience: %w", err)
	}
	defer rows.Close()

	entries := []types.WorkEntry{}
	for rows.Next() {
		var e types.WorkEntry
		var category string
		if err := rows.Scan(&e.Company, &e.Role, &e.Period, &category); err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		e.Category = types.Category(category)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (db *DB) loadCertifications(ctx context.Context) ([]types.Credential, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT name, issuer, validity FROM certifications ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to load certifications: %w", err)
	}
	defer rows.Close()

	certs := []types.Credential{}
	for rows.Next() {
		var c types.Credential
		if err := rows.Scan(&c.Name, &c.Issuer, &c.Validity); err != nil {
			return nil, fmt.Errorf("failed to scan certification: %w", err)
		}
		certs = append(certs, c)
	}
	return certs, rows.Err()
}

func (db *DB) loadProjects(ctx context.Context) ([]types.ProjectRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT name, role, tech_stack, responsibilities FROM projects ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	defer rows.Close()

	projects := []types.ProjectRecord{}
	for rows.Next() {
		var pr types.ProjectRecord
		if err := rows.Scan(&pr.Name, &pr.Role, &pr.TechStack, &pr.Responsibilities); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, pr)
	}
	return projects, rows.Err()
}

func (db *DB) loadSkills(ctx context.Context) ([]types.SkillGroup, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT title, skills FROM skill_groups ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to load skills: %w", err)
	}
	defer rows.Close()

	groups := []types.SkillGroup{}
	for rows.Next() {
		var g types.SkillGroup
		if err := rows.Scan(&g.Title, &g.Skills); err != nil {
			return nil, fmt.Errorf("failed to scan skill group: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (db *DB) loadEducation(ctx context.Context) (types.EducationRecord, error) {
	var e types.EducationRecord
	err := db.pool.QueryRow(ctx,
		`SELECT institution, degree, location, year, score FROM education WHERE id = 1`,
	).Scan(&e.Institution, &e.Degree, &e.Location, &e.Year, &e.Score)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return e, &MissingRecordError{Table: "education"}
		}
		return e, fmt.Errorf("failed to load education: %w", err)
	}
	return e, nil
}

func (db *DB) loadRank(ctx context.Context) (types.RankStats, error) {
	var r types.RankStats
	err := db.pool.QueryRow(ctx,
		`SELECT rank, badges, points, trailmixes FROM rank_stats WHERE id = 1`,
	).Scan(&r.Rank, &r.Badges, &r.Points, &r.Trailmixes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return r, &MissingRecordError{Table: "rank_stats"}
		}
		return r, fmt.Errorf("failed to load rank: %w", err)
	}
	return r, nil
}

// -----------------------------------------------------------------------------
// Seeding
// -----------------------------------------------------------------------------

// SeedPortfolio replaces all stored content with p in one transaction.
func (db *DB) SeedPortfolio(ctx context.Context, p types.Portfolio) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, table := range contentTables {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	c := p.Contact
	_, err = tx.Exec(ctx,
		`INSERT INTO contact_profile (name, objective, email, phone, location, linkedin_url, github_url, trailhead_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.Name, c.Objective, c.Email, c.Phone, c.Location,
		c.Links.LinkedIn, c.Links.GitHub, c.Links.Trailhead,
	)
	if err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}

	for i, e := range p.Experience {
		_, err = tx.Exec(ctx,
			`INSERT INTO work_entries (position, company, role, period, category) VALUES ($1, $2, $3, $4, $5)`,
			i, e.Company, e.Role, e.Period, string(e.Category),
		)
		if err != nil {
			return fmt.Errorf("failed to insert experience %d: %w", i, err)
		}
	}

	for i, cert := range p.Certifications {
		_, err = tx.Exec(ctx,
			`INSERT INTO certifications (position, name, issuer, validity) VALUES ($1, $2, $3, $4)`,
			i, cert.Name, cert.Issuer, cert.Validity,
		)
		if err != nil {
			return fmt.Errorf("failed to insert certification %d: %w", i, err)
		}
	}

	for i, pr := range p.Projects {
		_, err = tx.Exec(ctx,
			`INSERT INTO projects (position, name, role, tech_stack, responsibilities) VALUES ($1, $2, $3, $4, $5)`,
			i, pr.Name, pr.Role, nonNil(pr.TechStack), nonNil(pr.Responsibilities),
		)
		if err != nil {
			return fmt.Errorf("failed to insert project %d: %w", i, err)
		}
	}

	for i, g := range p.Skills {
		_, err = tx.Exec(ctx,
			`INSERT INTO skill_groups (position, title, skills) VALUES ($1, $2, $3)`,
			i, g.Title, nonNil(g.Skills),
		)
		if err != nil {
			return fmt.Errorf("failed to insert skill group %d: %w", i, err)
		}
	}

	e := p.Education
	_, err = tx.Exec(ctx,
		`INSERT INTO education (institution, degree, location, year, score) VALUES ($1, $2, $3, $4, $5)`,
		e.Institution, e.Degree, e.Location, e.Year, e.Score,
	)
	if err != nil {
		return fmt.Errorf("failed to insert education: %w", err)
	}

	r := p.Rank
	_, err = tx.Exec(ctx,
		`INSERT INTO rank_stats (rank, badges, points, trailmixes) VALUES ($1, $2, $3, $4)`,
		r.Rank, r.Badges, r.Points, r.Trailmixes,
	)
	if err != nil {
		return fmt.Errorf("failed to insert rank: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// nonNil maps a nil slice to an empty one so NOT NULL array columns accept it.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
