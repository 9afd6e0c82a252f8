// internal/domain/models/document.go
package models

// The flat content documents are addressed by the backend's string _id.
// DocID/SetDocID let the generic CRUD handlers read and clear it.

func (d *Course) DocID() string         { return d.ID }
func (d *Course) SetDocID(id string)    { d.ID = id }
func (d *HeroImage) DocID() string      { return d.ID }
func (d *HeroImage) SetDocID(id string) { d.ID = id }
func (d *Statistic) DocID() string      { return d.ID }
func (d *Statistic) SetDocID(id string) { d.ID = id }
func (d *CoreValue) DocID() string      { return d.ID }
func (d *CoreValue) SetDocID(id string) { d.ID = id }

func (d *CampusImage) DocID() string      { return d.ID }
func (d *CampusImage) SetDocID(id string) { d.ID = id }

func (d *ContentSection) DocID() string      { return d.ID }
func (d *ContentSection) SetDocID(id string) { d.ID = id }

func (d *CareerPost) DocID() string      { return d.ID }
func (d *CareerPost) SetDocID(id string) { d.ID = id }

func (d *CampusItem) DocID() string      { return d.ID }
func (d *CampusItem) SetDocID(id string) { d.ID = id }
