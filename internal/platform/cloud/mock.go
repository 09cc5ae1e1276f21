package cloud

import "context"

// Mock is a func-field implementation of ResourceManager for tests.
// Unset fields fall back to benign defaults: lookups echo the requested
// id, mutations succeed.
type Mock struct {
	RunInstanceFunc          func(ctx context.Context, opts RunInstanceOpts) (*Instance, error)
	GetInstanceFunc          func(ctx context.Context, instanceID string) (*Instance, error)
	StopInstanceFunc         func(ctx context.Context, instanceID string) (*Instance, error)
	TerminateInstanceFunc    func(ctx context.Context, instanceID string) error
	GetInstanceAttributeFunc func(ctx context.Context, instanceID, attribute string) (string, error)
	GetConsoleOutputFunc     func(ctx context.Context, instanceID string) (string, error)

	CreateVolumeFunc func(ctx context.Context, opts CreateVolumeOpts) (*Volume, error)
	GetVolumeFunc    func(ctx context.Context, volumeID string) (*Volume, error)
	GetVolumesFunc   func(ctx context.Context, tagKey, tagValue string) ([]*Volume, error)
	DeleteVolumeFunc func(ctx context.Context, volumeID string) error
	AttachVolumeFunc func(ctx context.Context, volumeID, instanceID, device string) error
	DetachVolumeFunc func(ctx context.Context, volumeID, instanceID string, force bool) error

	CreateSnapshotFunc func(ctx context.Context, volumeID, name, description string) (*Snapshot, error)
	GetSnapshotFunc    func(ctx context.Context, snapshotID string) (*Snapshot, error)
	GetSnapshotsFunc   func(ctx context.Context, snapshotIDs ...string) ([]*Snapshot, error)
	DeleteSnapshotFunc func(ctx context.Context, snapshotID string) error

	RegisterImageFunc func(ctx context.Context, opts RegisterImageOpts) (string, error)
	CreateImageFunc   func(ctx context.Context, opts CreateImageOpts) (string, error)
	GetImageFunc      func(ctx context.Context, imageID string) (*Image, error)
	GetImagesFunc     func(ctx context.Context, filter ImageFilter) ([]*Image, error)

	CreateSecurityGroupFunc func(ctx context.Context, name, description, vpcID string) (*SecurityGroup, error)
	GetSecurityGroupFunc    func(ctx context.Context, groupID string) (*SecurityGroup, error)
	AddIngressRuleFunc      func(ctx context.Context, groupID string, rule IngressRule) error
	DeleteSecurityGroupFunc func(ctx context.Context, groupID string) error

	GetSubnetFunc     func(ctx context.Context, subnetID string) (*Subnet, error)
	GetDefaultVPCFunc func(ctx context.Context) (*VPC, error)
	GetKeyPairFunc    func(ctx context.Context, name string) (*KeyPair, error)
	GetRegionsFunc    func(ctx context.Context) ([]string, error)

	CreateTagsFunc func(ctx context.Context, resourceID, name, description string) error
}

var _ ResourceManager = (*Mock)(nil)

func (m *Mock) RunInstance(ctx context.Context, opts RunInstanceOpts) (*Instance, error) {
	if m.RunInstanceFunc != nil {
		return m.RunInstanceFunc(ctx, opts)
	}
	return &Instance{ID: "i-mock", State: "pending"}, nil
}

func (m *Mock) GetInstance(ctx context.Context, instanceID string) (*Instance, error) {
	if m.GetInstanceFunc != nil {
		return m.GetInstanceFunc(ctx, instanceID)
	}
	return &Instance{ID: instanceID, State: "running"}, nil
}

func (m *Mock) StopInstance(ctx context.Context, instanceID string) (*Instance, error) {
	if m.StopInstanceFunc != nil {
		return m.StopInstanceFunc(ctx, instanceID)
	}
	return &Instance{ID: instanceID, State: "stopping"}, nil
}

func (m *Mock) TerminateInstance(ctx context.Context, instanceID string) error {
	if m.TerminateInstanceFunc != nil {
		return m.TerminateInstanceFunc(ctx, instanceID)
	}
	return nil
}

func (m *Mock) GetInstanceAttribute(ctx context.Context, instanceID, attribute string) (string, error) {
	if m.GetInstanceAttributeFunc != nil {
		return m.GetInstanceAttributeFunc(ctx, instanceID, attribute)
	}
	return "", nil
}

func (m *Mock) GetConsoleOutput(ctx context.Context, instanceID string) (string, error) {
	if m.GetConsoleOutputFunc != nil {
		return m.GetConsoleOutputFunc(ctx, instanceID)
	}
	return "", nil
}

func (m *Mock) CreateVolume(ctx context.Context, opts CreateVolumeOpts) (*Volume, error) {
	if m.CreateVolumeFunc != nil {
		return m.CreateVolumeFunc(ctx, opts)
	}
	return &Volume{ID: "vol-mock", AvailabilityZone: opts.AvailabilityZone, Size: opts.Size}, nil
}

func (m *Mock) GetVolume(ctx context.Context, volumeID string) (*Volume, error) {
	if m.GetVolumeFunc != nil {
		return m.GetVolumeFunc(ctx, volumeID)
	}
	return &Volume{ID: volumeID, State: "available"}, nil
}

func (m *Mock) GetVolumes(ctx context.Context, tagKey, tagValue string) ([]*Volume, error) {
	if m.GetVolumesFunc != nil {
		return m.GetVolumesFunc(ctx, tagKey, tagValue)
	}
	return nil, nil
}

func (m *Mock) DeleteVolume(ctx context.Context, volumeID string) error {
	if m.DeleteVolumeFunc != nil {
		return m.DeleteVolumeFunc(ctx, volumeID)
	}
	return nil
}

func (m *Mock) AttachVolume(ctx context.Context, volumeID, instanceID, device string) error {
	if m.AttachVolumeFunc != nil {
		return m.AttachVolumeFunc(ctx, volumeID, instanceID, device)
	}
	return nil
}

func (m *Mock) DetachVolume(ctx context.Context, volumeID, instanceID string, force bool) error {
	if m.DetachVolumeFunc != nil {
		return m.DetachVolumeFunc(ctx, volumeID, instanceID, force)
	}
	return nil
}

func (m *Mock) CreateSnapshot(ctx context.Context, volumeID, name, description string) (*Snapshot, error) {
	if m.CreateSnapshotFunc != nil {
		return m.CreateSnapshotFunc(ctx, volumeID, name, description)
	}
	return &Snapshot{ID: "snap-mock", VolumeID: volumeID, Description: description}, nil
}

func (m *Mock) GetSnapshot(ctx context.Context, snapshotID string) (*Snapshot, error) {
	if m.GetSnapshotFunc != nil {
		return m.GetSnapshotFunc(ctx, snapshotID)
	}
	return &Snapshot{ID: snapshotID, State: "completed"}, nil
}

func (m *Mock) GetSnapshots(ctx context.Context, snapshotIDs ...string) ([]*Snapshot, error) {
	if m.GetSnapshotsFunc != nil {
		return m.GetSnapshotsFunc(ctx, snapshotIDs...)
	}
	snapshots := make([]*Snapshot, 0, len(snapshotIDs))
	for _, id := range snapshotIDs {
		snapshots = append(snapshots, &Snapshot{ID: id, State: "completed"})
	}
	return snapshots, nil
}

func (m *Mock) DeleteSnapshot(ctx context.Context, snapshotID string) error {
	if m.DeleteSnapshotFunc != nil {
		return m.DeleteSnapshotFunc(ctx, snapshotID)
	}
	return nil
}

func (m *Mock) RegisterImage(ctx context.Context, opts RegisterImageOpts) (string, error) {
	if m.RegisterImageFunc != nil {
		return m.RegisterImageFunc(ctx, opts)
	}
	return "ami-mock", nil
}

func (m *Mock) CreateImage(ctx context.Context, opts CreateImageOpts) (string, error) {
	if m.CreateImageFunc != nil {
		return m.CreateImageFunc(ctx, opts)
	}
	return "ami-mock", nil
}

func (m *Mock) GetImage(ctx context.Context, imageID string) (*Image, error) {
	if m.GetImageFunc != nil {
		return m.GetImageFunc(ctx, imageID)
	}
	return &Image{ID: imageID, State: "available"}, nil
}

func (m *Mock) GetImages(ctx context.Context, filter ImageFilter) ([]*Image, error) {
	if m.GetImagesFunc != nil {
		return m.GetImagesFunc(ctx, filter)
	}
	return nil, nil
}

func (m *Mock) CreateSecurityGroup(ctx context.Context, name, description, vpcID string) (*SecurityGroup, error) {
	if m.CreateSecurityGroupFunc != nil {
		return m.CreateSecurityGroupFunc(ctx, name, description, vpcID)
	}
	return &SecurityGroup{ID: "sg-mock", Name: name, VPCID: vpcID}, nil
}

func (m *Mock) GetSecurityGroup(ctx context.Context, groupID string) (*SecurityGroup, error) {
	if m.GetSecurityGroupFunc != nil {
		return m.GetSecurityGroupFunc(ctx, groupID)
	}
	return &SecurityGroup{ID: groupID}, nil
}

func (m *Mock) AddIngressRule(ctx context.Context, groupID string, rule IngressRule) error {
	if m.AddIngressRuleFunc != nil {
		return m.AddIngressRuleFunc(ctx, groupID, rule)
	}
	return nil
}

func (m *Mock) DeleteSecurityGroup(ctx context.Context, groupID string) error {
	if m.DeleteSecurityGroupFunc != nil {
		return m.DeleteSecurityGroupFunc(ctx, groupID)
	}
	return nil
}

func (m *Mock) GetSubnet(ctx context.Context, subnetID string) (*Subnet, error) {
	if m.GetSubnetFunc != nil {
		return m.GetSubnetFunc(ctx, subnetID)
	}
	return &Subnet{ID: subnetID}, nil
}

func (m *Mock) GetDefaultVPC(ctx context.Context) (*VPC, error) {
	if m.GetDefaultVPCFunc != nil {
		return m.GetDefaultVPCFunc(ctx)
	}
	return &VPC{ID: "vpc-mock", IsDefault: true}, nil
}

func (m *Mock) GetKeyPair(ctx context.Context, name string) (*KeyPair, error) {
	if m.GetKeyPairFunc != nil {
		return m.GetKeyPairFunc(ctx, name)
	}
	return &KeyPair{Name: name}, nil
}

func (m *Mock) GetRegions(ctx context.Context) ([]string, error) {
	if m.GetRegionsFunc != nil {
		return m.GetRegionsFunc(ctx)
	}
	return []string{"us-east-1"}, nil
}

func (m *Mock) CreateTags(ctx context.Context, resourceID, name, description string) error {
	if m.CreateTagsFunc != nil {
		return m.CreateTagsFunc(ctx, resourceID, name, description)
	}
	return nil
}
