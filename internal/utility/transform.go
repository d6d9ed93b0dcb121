package utility

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransformConfig chứa cấu hình được parse từ struct tag `transform`.
// Tag có dạng: transform:"<type>[,optional][,default=<value>][,map_to=<FieldName>]"
// Các type hỗ trợ: str_objectid, str_objectid_ptr, str_objectid_array,
// string, int, nested_struct
type TransformConfig struct {
	Type     string // Kiểu transform (str_objectid, string, int, ...)
	Optional bool   // Field không bắt buộc, lỗi transform sẽ được bỏ qua
	Default  string // Giá trị mặc định khi field rỗng
	HasDef   bool   // Có khai báo default hay không
	MapTo    string // Tên field đích trên model (nếu khác tên field input)
}

// ParseTransformTag phân tích tag transform thành TransformConfig
// @params - giá trị tag transform
// @returns - cấu hình transform và lỗi nếu có
func ParseTransformTag(tag string) (*TransformConfig, error) {
	parts := strings.Split(tag, ",")
	if len(parts) == 0 || parts[0] == "" {
		return nil, fmt.Errorf("transform tag rỗng")
	}

	config := &TransformConfig{Type: strings.TrimSpace(parts[0])}
	for _, part := range parts[1:] {
		part = strings.TrimSpace(part)
		switch {
		case part == "optional":
			config.Optional = true
		case strings.HasPrefix(part, "default="):
			config.Default = strings.TrimPrefix(part, "default=")
			config.HasDef = true
		case strings.HasPrefix(part, "map_to="):
			config.MapTo = strings.TrimPrefix(part, "map_to=")
		default:
			return nil, fmt.Errorf("transform option không hợp lệ: %s", part)
		}
	}
	return config, nil
}

// TransformFieldValue chuyển đổi giá trị field input sang kiểu của field model
// theo cấu hình transform. Trả về nil khi field optional và rỗng.
func TransformFieldValue(value interface{}, config *TransformConfig, targetType reflect.Type) (interface{}, error) {
	switch config.Type {
	case "str_objectid":
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("str_objectid yêu cầu giá trị string, nhận %T", value)
		}
		if s == "" {
			if config.Optional {
				return nil, nil
			}
			return nil, fmt.Errorf("giá trị ObjectID rỗng")
		}
		objID, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			return nil, fmt.Errorf("ObjectID không hợp lệ: %s", s)
		}
		return objID, nil

	case "str_objectid_ptr":
		s, ok := value.(string)
		if !ok || s == "" {
			if config.Optional {
				return nil, nil
			}
			return nil, fmt.Errorf("giá trị ObjectID rỗng")
		}
		objID, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			return nil, fmt.Errorf("ObjectID không hợp lệ: %s", s)
		}
		return &objID, nil

	case "str_objectid_array":
		items, ok := value.([]string)
		if !ok {
			if config.Optional || config.HasDef {
				return []primitive.ObjectID{}, nil
			}
			return nil, fmt.Errorf("str_objectid_array yêu cầu []string, nhận %T", value)
		}
		result := make([]primitive.ObjectID, 0, len(items))
		for _, s := range items {
			objID, err := primitive.ObjectIDFromHex(s)
			if err != nil {
				return nil, fmt.Errorf("ObjectID không hợp lệ trong mảng: %s", s)
			}
			result = append(result, objID)
		}
		return result, nil

	case "string":
		s, _ := value.(string)
		if s == "" && config.HasDef {
			return config.Default, nil
		}
		return s, nil

	case "int":
		switch v := value.(type) {
		case int:
			return v, nil
		case int64:
			return int(v), nil
		case float64:
			return int(v), nil
		case string:
			if v == "" && config.HasDef {
				return strconv.Atoi(config.Default)
			}
			return strconv.Atoi(v)
		default:
			if config.HasDef {
				return strconv.Atoi(config.Default)
			}
			return nil, fmt.Errorf("không thể convert %T sang int", value)
		}

	case "nested_struct":
		// Struct lồng nhau được copy nguyên giá trị, kiểu phải tương thích
		return value, nil

	default:
		return nil, fmt.Errorf("transform type không được hỗ trợ: %s", config.Type)
	}
}
