package result

import (
	"errors"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TableDescription is the normalized table descriptor. Status is the
// service's status token lower-cased ("active", "creating", ...).
type TableDescription struct {
	Name          string
	Status        string
	CreatedAt     time.Time
	ItemCount     int64
	SizeBytes     int64
	HashKey       string
	RangeKey      string
	ReadCapacity  int64
	WriteCapacity int64
}

// DescribeFrom normalizes a describe-table response. A lookup the
// service reports as not found is recovered into a nil description,
// not an error; every other transport fault passes through unchanged.
func DescribeFrom(output *dynamodb.DescribeTableOutput, err error) (*TableDescription, error) {
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, err
	}
	if output == nil || output.Table == nil {
		return nil, nil
	}

	table := output.Table
	description := &TableDescription{
		Status: strings.ToLower(string(table.TableStatus)),
	}
	if table.TableName != nil {
		description.Name = *table.TableName
	}
	if table.CreationDateTime != nil {
		description.CreatedAt = *table.CreationDateTime
	}
	if table.ItemCount != nil {
		description.ItemCount = *table.ItemCount
	}
	if table.TableSizeBytes != nil {
		description.SizeBytes = *table.TableSizeBytes
	}
	for _, element := range table.KeySchema {
		if element.AttributeName == nil {
			continue
		}
		switch element.KeyType {
		case types.KeyTypeHash:
			description.HashKey = *element.AttributeName
		case types.KeyTypeRange:
			description.RangeKey = *element.AttributeName
		}
	}
	if throughput := table.ProvisionedThroughput; throughput != nil {
		if throughput.ReadCapacityUnits != nil {
			description.ReadCapacity = *throughput.ReadCapacityUnits
		}
		if throughput.WriteCapacityUnits != nil {
			description.WriteCapacity = *throughput.WriteCapacityUnits
		}
	}
	return description, nil
}
