package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/manus88/machinery-erp/internal/core/domain"
	"github.com/manus88/machinery-erp/internal/core/ports"
)

const collectionMachinery = "machinery"

// maintenanceDueExpr matches active machinery at or past its next-maintenance
// threshold. The threshold must be set; machines without one are never due.
var maintenanceDueExpr = bson.M{
	"next_maintenance_hours": bson.M{"$ne": nil},
	"$expr":                  bson.M{"$gte": bson.A{"$horometer", "$next_maintenance_hours"}},
}

type MachineryRepository struct {
	col *mongo.Collection
}

func NewMachineryRepository(db *mongo.Database) *MachineryRepository {
	return &MachineryRepository{col: db.Collection(collectionMachinery)}
}

// activeScope is the base filter applied to every machinery read:
// tenant-scoped and excluding soft-deleted rows.
func activeScope(tenantID string) bson.M {
	return bson.M{"tenant_id": tenantID, "is_active": true}
}

func (r *MachineryRepository) Insert(ctx context.Context, m *domain.Machinery) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, m); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("insert machinery: %w", err)
	}
	return nil
}

func (r *MachineryRepository) List(ctx context.Context, tenantID string, filter ports.MachineryFilter, page ports.Page) ([]*domain.Machinery, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := activeScope(tenantID)
	if filter.MachineryType != "" {
		query["machinery_type"] = filter.MachineryType
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.NeedsMaintenance != nil {
		if *filter.NeedsMaintenance {
			query["next_maintenance_hours"] = bson.M{"$ne": nil}
			query["$expr"] = bson.M{"$gte": bson.A{"$horometer", "$next_maintenance_hours"}}
		} else {
			query["$or"] = bson.A{
				bson.M{"next_maintenance_hours": nil},
				bson.M{"$expr": bson.M{"$lt": bson.A{"$horometer", "$next_maintenance_hours"}}},
			}
		}
	}

	opts := options.Find().
		SetSkip(page.Skip).
		SetLimit(page.Limit).
		SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list machinery: %w", err)
	}
	defer cursor.Close(ctx)

	machinery := make([]*domain.Machinery, 0)
	if err := cursor.All(ctx, &machinery); err != nil {
		return nil, fmt.Errorf("decode machinery: %w", err)
	}
	return machinery, nil
}

func (r *MachineryRepository) FindByID(ctx context.Context, tenantID, id string) (*domain.Machinery, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := activeScope(tenantID)
	query["_id"] = id

	var m domain.Machinery
	if err := r.col.FindOne(ctx, query).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMachineryNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MachineryRepository) Update(ctx context.Context, tenantID, id string, input ports.UpdateMachineryInput) (*domain.Machinery, error) {
	set := updateSet(input)
	if len(set) == 0 {
		return r.FindByID(ctx, tenantID, id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := activeScope(tenantID)
	query["_id"] = id

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var m domain.Machinery
	err := r.col.FindOneAndUpdate(ctx, query, bson.M{"$set": set}, opts).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMachineryNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateCode
		}
		return nil, fmt.Errorf("update machinery: %w", err)
	}
	return &m, nil
}

// UpdateHorometer overwrites the horometer reading unconditionally and, when
// operatorName is non-empty, the operator name as well.
func (r *MachineryRepository) UpdateHorometer(ctx context.Context, tenantID, id string, horometer float64, operatorName string) (*domain.Machinery, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"horometer": horometer}
	if operatorName != "" {
		set["operator_name"] = operatorName
	}

	query := activeScope(tenantID)
	query["_id"] = id

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var m domain.Machinery
	err := r.col.FindOneAndUpdate(ctx, query, bson.M{"$set": set}, opts).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMachineryNotFound
		}
		return nil, fmt.Errorf("update horometer: %w", err)
	}
	return &m, nil
}

// SoftDelete flips is_active to false. The row stays in storage but
// disappears from every scoped read.
func (r *MachineryRepository) SoftDelete(ctx context.Context, tenantID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := activeScope(tenantID)
	query["_id"] = id

	res, err := r.col.UpdateOne(ctx, query, bson.M{"$set": bson.M{"is_active": false}})
	if err != nil {
		return fmt.Errorf("soft delete machinery: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMachineryNotFound
	}
	return nil
}

// Stats aggregates counts and horometer hours over the tenant's active
// machinery in a single pipeline round-trip.
func (r *MachineryRepository) Stats(ctx context.Context, tenantID string) (*ports.MachineryStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	statusCount := func(status domain.MachineryStatus) bson.M {
		return bson.M{"$sum": bson.M{"$cond": bson.A{
			bson.M{"$eq": bson.A{"$status", string(status)}}, 1, 0,
		}}}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: activeScope(tenantID)}},
		{{Key: "$group", Value: bson.M{
			"_id":            nil,
			"total":          bson.M{"$sum": 1},
			"operational":    statusCount(domain.StatusOperational),
			"in_maintenance": statusCount(domain.StatusInMaintenance),
			"needs_maintenance": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$and": bson.A{
					bson.M{"$ne": bson.A{"$next_maintenance_hours", nil}},
					bson.M{"$gte": bson.A{"$horometer", "$next_maintenance_hours"}},
				}}, 1, 0,
			}}},
			"total_hours": bson.M{"$sum": "$horometer"},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("machinery stats: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total            int64   `bson:"total"`
		Operational      int64   `bson:"operational"`
		InMaintenance    int64   `bson:"in_maintenance"`
		NeedsMaintenance int64   `bson:"needs_maintenance"`
		TotalHours       float64 `bson:"total_hours"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode machinery stats: %w", err)
	}

	stats := &ports.MachineryStats{}
	if len(rows) > 0 {
		stats.Total = rows[0].Total
		stats.Operational = rows[0].Operational
		stats.InMaintenance = rows[0].InMaintenance
		stats.NeedsMaintenance = rows[0].NeedsMaintenance
		stats.TotalHours = rows[0].TotalHours
	}
	return stats, nil
}

func (r *MachineryRepository) FindDueMaintenance(ctx context.Context, tenantID string) ([]*domain.Machinery, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := activeScope(tenantID)
	for k, v := range maintenanceDueExpr {
		query[k] = v
	}

	cursor, err := r.col.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find due machinery: %w", err)
	}
	defer cursor.Close(ctx)

	machinery := make([]*domain.Machinery, 0)
	if err := cursor.All(ctx, &machinery); err != nil {
		return nil, fmt.Errorf("decode machinery: %w", err)
	}
	return machinery, nil
}

// updateSet builds the $set document from the non-nil fields of a partial
// update. Nil pointers are omitted fields and leave the stored value alone.
func updateSet(input ports.UpdateMachineryInput) bson.M {
	set := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Code != nil {
		set["code"] = *input.Code
	}
	if input.Brand != nil {
		set["brand"] = *input.Brand
	}
	if input.Model != nil {
		set["model"] = *input.Model
	}
	if input.SerialNumber != nil {
		set["serial_number"] = *input.SerialNumber
	}
	if input.Year != nil {
		set["year"] = *input.Year
	}
	if input.MachineryType != nil {
		set["machinery_type"] = *input.MachineryType
	}
	if input.Status != nil {
		set["status"] = *input.Status
	}
	if input.CurrentLocation != nil {
		set["current_location"] = *input.CurrentLocation
	}
	if input.CurrentProject != nil {
		set["current_project"] = *input.CurrentProject
	}
	if input.Horometer != nil {
		set["horometer"] = *input.Horometer
	}
	if input.Odometer != nil {
		set["odometer"] = *input.Odometer
	}
	if input.OperatorName != nil {
		set["operator_name"] = *input.OperatorName
	}
	if input.OperatorID != nil {
		set["operator_id"] = *input.OperatorID
	}
	if input.NextMaintenanceHours != nil {
		set["next_maintenance_hours"] = *input.NextMaintenanceHours
	}
	if input.MaintenanceIntervalHours != nil {
		set["maintenance_interval_hours"] = *input.MaintenanceIntervalHours
	}
	if input.LastMaintenanceDate != nil {
		set["last_maintenance_date"] = *input.LastMaintenanceDate
	}
	if input.AcquisitionCost != nil {
		set["acquisition_cost"] = *input.AcquisitionCost
	}
	if input.HourlyRate != nil {
		set["hourly_rate"] = *input.HourlyRate
	}
	if input.FuelConsumptionRate != nil {
		set["fuel_consumption_rate"] = *input.FuelConsumptionRate
	}
	if input.Capacity != nil {
		set["capacity"] = *input.Capacity
	}
	if input.EnginePower != nil {
		set["engine_power"] = *input.EnginePower
	}
	if input.Weight != nil {
		set["weight"] = *input.Weight
	}
	if input.PlateNumber != nil {
		set["plate_number"] = *input.PlateNumber
	}
	if input.IsAvailable != nil {
		set["is_available"] = *input.IsAvailable
	}
	return set
}

// EnsureIndexes creates the global unique code index and the scoped
// tenant/is_active index backing every list query.
func (r *MachineryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tenant_id", Value: 1}, {Key: "is_active", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
